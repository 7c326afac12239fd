package entities

// Kind identifies a category of host object.
// Its String form is the snake_case fragment used in entry-point names.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindColorNote
	KindBombNote
	KindChainHeadNote
	KindChainLinkNote
	KindChainNote
	KindArc
	KindWall
	KindSaber
	KindVec2
	KindVec3
	KindVec4
	KindQuat
	KindColor
)

var kindNames = [...]string{
	KindInvalid:       "invalid",
	KindColorNote:     "color_note",
	KindBombNote:      "bomb_note",
	KindChainHeadNote: "chain_head_note",
	KindChainLinkNote: "chain_link_note",
	KindChainNote:     "chain_note",
	KindArc:           "arc",
	KindWall:          "wall",
	KindSaber:         "saber",
	KindVec2:          "vec2",
	KindVec3:          "vec3",
	KindVec4:          "vec4",
	KindQuat:          "quat",
	KindColor:         "color",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// ParseKind returns the Kind with the given entry-point name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name && Kind(k) != KindInvalid {
			return Kind(k), true
		}
	}
	return KindInvalid, false
}

// IsGameplayObject reports whether objects of this kind live in the beatmap.
func (k Kind) IsGameplayObject() bool {
	return k >= KindColorNote && k <= KindWall
}

// IsValue reports whether the kind is a vector, quaternion or color value.
func (k Kind) IsValue() bool {
	return k >= KindVec2 && k <= KindColor
}

// Attr names one float component of a value kind.
type Attr uint8

const (
	AttrX Attr = iota
	AttrY
	AttrZ
	AttrW
	AttrR
	AttrG
	AttrB
	AttrA
)

var attrNames = [...]string{"x", "y", "z", "w", "r", "g", "b", "a"}

func (a Attr) String() string {
	if int(a) < len(attrNames) {
		return attrNames[a]
	}
	return "?"
}

// Index returns the component slot of the attribute: x/r=0, y/g=1, z/b=2, w/a=3.
func (a Attr) Index() int {
	return int(a) % 4
}

// StoreKind is the value type of a persistent store entry.
type StoreKind uint8

const (
	StoreI32 StoreKind = iota
	StoreF32
	StoreStr
)

func (s StoreKind) String() string {
	switch s {
	case StoreI32:
		return "i32"
	case StoreF32:
		return "f32"
	case StoreStr:
		return "str"
	default:
		return "?"
	}
}

// StoreKinds lists every persistent value type in entry-point order.
func StoreKinds() []StoreKind {
	return []StoreKind{StoreI32, StoreF32, StoreStr}
}
