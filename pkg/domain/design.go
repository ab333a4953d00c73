package domain

// Density は生成されるデザインの視覚的な密度を表します。
type Density string

const (
	DensityMinimal Density = "minimal"
	DensityDefault Density = "default" // UI 上の表示名は Balanced
	DensityLush    Density = "lush"
)

// Normalize は未知の値を DensityDefault に丸めます。
func (d Density) Normalize() Density {
	switch d {
	case DensityMinimal, DensityLush:
		return d
	default:
		return DensityDefault
	}
}

// RedesignConfiguration は呼び出しごとに作られる再デザインの設定です。
// Styles は空でないことを呼び出し元が保証します。
type RedesignConfiguration struct {
	Styles                 []string
	AllowStructuralChanges bool
	ClimateZone            string // 空文字を許容
	LockAspectRatio        bool
	Density                Density
}

// Plant はカタログ内の植物エントリです。
type Plant struct {
	Name    string `json:"name"`
	Species string `json:"species"`
}

// Feature はカタログ内の構造物・設備エントリです。
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DesignCatalog は生成画像に付随する植物と設備の一覧です。
type DesignCatalog struct {
	Plants   []Plant   `json:"plants"`
	Features []Feature `json:"features"`
}

// EmptyCatalog はカタログが得られなかった場合の既定値を返します。
func EmptyCatalog() DesignCatalog {
	return DesignCatalog{Plants: []Plant{}, Features: []Feature{}}
}

// Normalize は nil のリストを空リストに置き換えます。
// モデルがカテゴリを省略した場合でも JSON では [] として出力されます。
func (c DesignCatalog) Normalize() DesignCatalog {
	if c.Plants == nil {
		c.Plants = []Plant{}
	}
	if c.Features == nil {
		c.Features = []Feature{}
	}
	return c
}

// Replacement は置換指示 (From を To に置き換える) です。
type Replacement struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// RefinementModifications は既存デザインへの修正指示です。
type RefinementModifications struct {
	Deletions    []string      `json:"deletions"`
	Replacements []Replacement `json:"replacements"`
	Additions    []string      `json:"additions"`
}

// IsEmpty は 3 つのリストがすべて空の場合に true を返します。
// この場合、修正は入力画像をそのまま返すだけの処理になります。
func (m RefinementModifications) IsEmpty() bool {
	return len(m.Deletions) == 0 && len(m.Replacements) == 0 && len(m.Additions) == 0
}
