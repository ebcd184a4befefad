package unity

type Vector3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type Vector4 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
	W float64 `yaml:"w"`
}

type Ref struct {
	FileID int64  `yaml:"fileID"`
	GUID   string `yaml:"guid"`
	Type   int    `yaml:"type"`
}

type Transform struct {
	GameObject Ref    `yaml:"m_GameObject"`
	Father     Ref    `yaml:"m_Father"`
	Children   []*Ref `yaml:"m_Children"`

	LocalRotation        Vector4 `yaml:"m_LocalRotation"`
	LocalPosition        Vector3 `yaml:"m_LocalPosition"`
	LocalScale           Vector3 `yaml:"m_LocalScale"`
	LocalEulerAnglesHint Vector3 `yaml:"m_LocalEulerAnglesHint"`

	RootOrder int `yaml:"m_RootOrder"`
}
