package notion

// Place 行きたいところリストの1件
type Place struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Memo     string `json:"memo,omitempty"`
	Address  string `json:"address,omitempty"`
	Visited  bool   `json:"visited"`
}

var validCategories = []string{"旅行", "飲食店", "買い物", "その他"}

var validPriorities = []string{"高", "中", "低"}

// NormalizeCategory 未知のカテゴリは「その他」に寄せる
func NormalizeCategory(category string) string {
	for _, c := range validCategories {
		if category == c {
			return c
		}
	}
	return "その他"
}

// NormalizePriority 未知の優先度は「中」に寄せる
func NormalizePriority(priority string) string {
	for _, p := range validPriorities {
		if priority == p {
			return p
		}
	}
	return "中"
}

// page Notionのページレスポンス（必要なプロパティのみ）
type page struct {
	ID         string `json:"id"`
	Properties struct {
		Name struct {
			Title []struct {
				PlainText string `json:"plain_text"`
			} `json:"title"`
		} `json:"名前"`
		Category struct {
			Select *struct {
				Name string `json:"name"`
			} `json:"select"`
		} `json:"カテゴリ"`
		Priority struct {
			Select *struct {
				Name string `json:"name"`
			} `json:"select"`
		} `json:"優先度"`
		Visited struct {
			Checkbox bool `json:"checkbox"`
		} `json:"行った"`
		Memo struct {
			RichText []struct {
				PlainText string `json:"plain_text"`
			} `json:"rich_text"`
		} `json:"メモ"`
		Address struct {
			RichText []struct {
				PlainText string `json:"plain_text"`
			} `json:"rich_text"`
		} `json:"住所"`
	} `json:"properties"`
}

func (p page) toPlace() Place {
	place := Place{ID: p.ID, Visited: p.Properties.Visited.Checkbox}
	if len(p.Properties.Name.Title) > 0 {
		place.Name = p.Properties.Name.Title[0].PlainText
	}
	if p.Properties.Category.Select != nil {
		place.Category = p.Properties.Category.Select.Name
	}
	if p.Properties.Priority.Select != nil {
		place.Priority = p.Properties.Priority.Select.Name
	}
	if len(p.Properties.Memo.RichText) > 0 {
		place.Memo = p.Properties.Memo.RichText[0].PlainText
	}
	if len(p.Properties.Address.RichText) > 0 {
		place.Address = p.Properties.Address.RichText[0].PlainText
	}
	return place
}
