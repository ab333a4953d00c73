package domain

// LandscapingStyle は選択可能なランドスケープスタイルです。
type LandscapingStyle struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LandscapingStyles はサポートするスタイルの一覧です。先頭が既定のスタイルです。
var LandscapingStyles = []LandscapingStyle{
	{ID: "modern", Name: "Modern"},
	{ID: "farmhouse", Name: "Farmhouse"},
	{ID: "japanese", Name: "Japanese Garden"},
	{ID: "mediterranean", Name: "Mediterranean"},
	{ID: "english-cottage", Name: "English Cottage"},
	{ID: "tropical", Name: "Tropical"},
	{ID: "xeriscape", Name: "Desert Xeriscape"},
	{ID: "woodland", Name: "Woodland"},
	{ID: "formal", Name: "Formal"},
	{ID: "zen", Name: "Zen Minimalist"},
}

// StyleName はスタイル ID の表示名を返します。未知の ID はそのまま返します。
func StyleName(id string) string {
	for _, s := range LandscapingStyles {
		if s.ID == id {
			return s.Name
		}
	}
	return id
}

// StyleNames は ID の並び順を保ったまま表示名に変換します。
func StyleNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, StyleName(id))
	}
	return names
}
