package config

// AnimationDef describes how to build a frame set from embedded images.
// Either Sheet (sliced into Rows x Cols) or Files is used.
type AnimationDef struct {
	Sheet string
	Rows  int
	Cols  int
	Files []string
	Loop  bool
}

// Animations maps an actor key to its animation definition.
var Animations = map[string]AnimationDef{
	"hero": {Sheet: "images/hero.png", Rows: 1, Cols: 4, Loop: true},
	"coin": {
		Files: []string{
			"images/coin/coin_0.png",
			"images/coin/coin_1.png",
			"images/coin/coin_2.png",
			"images/coin/coin_3.png",
		},
		Loop: true,
	},
}

// Level is the embedded demo map.
const Level = "levels/demo.tmx"
