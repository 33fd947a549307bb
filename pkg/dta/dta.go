package dta

import "iter"

// Value は DTA の値です。
// string, float64, bool, []Value, map[string]Value のいずれかを保持します。
type Value = any

// Entry は最上位のリスト (id ...body) 1つ分です。
type Entry struct {
	ID    string
	Props map[string]Value
	// Meta はエントリ内のコメント行から作ったメタ情報です。該当するコメントがなければ nil です。
	Meta map[string]Value
}

// Parse は DTA テキストを解析し、エントリを出現順に返します。
func Parse(input string) []Entry {
	var entries []Entry
	for _, n := range ParseTokens(Tokenize(input)) {
		if e, ok := toEntry(n); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// toEntry は最上位のノードをエントリに変換します。
// 要素が2つ未満のリスト、リスト以外、先頭が ID として使えないリストは対象外です。
func toEntry(n Node) (Entry, bool) {
	if n.Kind != NodeList || len(n.Children) < 2 {
		return Entry{}, false
	}

	var id string
	switch head := n.Children[0]; head.Kind {
	case NodeSymbol, NodeString:
		id = head.Text
	case NodeNumber:
		id = formatNumber(head.Number)
	default:
		return Entry{}, false
	}

	var comments []string
	data := make([]Node, 0, len(n.Children)-1)
	for _, item := range n.Children[1:] {
		if item.Kind == NodeComment {
			comments = append(comments, item.Text)
			continue
		}
		data = append(data, item)
	}

	return Entry{
		ID:    id,
		Props: convertBlock(data),
		Meta:  parseComments(comments),
	}, true
}

// Catalog は ID をキーにしたエントリの集合です。ID は最初に現れた順を保ちます。
type Catalog struct {
	ids     []string
	entries map[string]Entry
}

// ParseToMap は DTA テキストを解析して Catalog を返します。
// 同じ ID が複数回現れた場合は最後の定義を採用し、並び順は最初の位置のままです。
func ParseToMap(input string) *Catalog {
	c := &Catalog{entries: make(map[string]Entry)}
	for _, e := range Parse(input) {
		if _, exists := c.entries[e.ID]; !exists {
			c.ids = append(c.ids, e.ID)
		}
		c.entries[e.ID] = e
	}
	return c
}

// Len はエントリ数を返します。
func (c *Catalog) Len() int {
	return len(c.ids)
}

// IDs は ID を順に並べたスライスのコピーを返します。
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.ids...)
}

// Get は ID に対応するエントリを返します。
func (c *Catalog) Get(id string) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// All はエントリを ID の順に返すイテレータです。
func (c *Catalog) All() iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		for _, id := range c.ids {
			if !yield(id, c.entries[id]) {
				return
			}
		}
	}
}
