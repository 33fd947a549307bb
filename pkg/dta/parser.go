package dta

// NodeKind は構文木のノードの種類です。
type NodeKind int

const (
	NodeList NodeKind = iota
	NodeSymbol
	NodeString
	NodeNumber
	NodeComment
)

// Node は S 式の構文木のノードです。
type Node struct {
	Kind     NodeKind
	Text     string  // Symbol, String, Comment の本文。Number では元のリテラル
	Number   float64 // Number の値
	Children []Node  // List の要素
}

// isKey はノードがレコードのキーとして使えるかどうかを返します。
func (n Node) isKey() bool {
	return n.Kind == NodeSymbol || n.Kind == NodeString
}

// ParseTokens はトークン列を構文木に変換します。
// 対応する開き括弧のない閉じ括弧は読み飛ばし、閉じられていないリストは入力の末尾で終わります。
func ParseTokens(tokens []Token) []Node {
	p := &parser{tokens: tokens}
	var nodes []Node
	for p.pos < len(p.tokens) {
		if p.tokens[p.pos].Kind == TokenClose {
			p.pos++
			continue
		}
		nodes = append(nodes, p.parseOne())
	}
	return nodes
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) parseOne() Node {
	tok := p.tokens[p.pos]
	p.pos++

	switch tok.Kind {
	case TokenOpen:
		list := Node{Kind: NodeList}
		for p.pos < len(p.tokens) && p.tokens[p.pos].Kind != TokenClose {
			list.Children = append(list.Children, p.parseOne())
		}
		p.pos++ // ')'
		return list
	case TokenComment:
		return Node{Kind: NodeComment, Text: tok.Text}
	case TokenQuoted:
		return Node{Kind: NodeString, Text: tok.Text}
	default:
		if f, ok := parseNumber(tok.Text); ok {
			return Node{Kind: NodeNumber, Text: tok.Text, Number: f}
		}
		return Node{Kind: NodeSymbol, Text: tok.Text}
	}
}
