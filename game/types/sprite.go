package types

// EdibleKind separates jedi tokens from sith tokens.
type EdibleKind int

const (
	Jedi EdibleKind = iota
	Sith
)

func (k EdibleKind) String() string {
	if k == Sith {
		return "sith"
	}
	return "jedi"
}

// Prefix is the image file prefix used for the kind ("j1.gif", "s3.gif").
func (k EdibleKind) Prefix() string {
	if k == Sith {
		return "s"
	}
	return "j"
}

// Sprite identifies one visual variant of an edible.
type Sprite struct {
	Kind    EdibleKind
	Variant int
}

// Sound names an effect a SoundPlayer can play.
type Sound int

const (
	SoundJedi Sound = iota
	SoundSith
	SoundGameOver
)
