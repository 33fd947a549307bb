package dta

// keyedBlockThreshold はリストをレコードとして扱うためのキー付き要素の割合です。
// コメントを除いた要素のうち、キー付きリストの割合がこの値を「越える」場合にレコードになります。
// DTA にはスキーマがないため推測に頼っており、境界付近の入力は曖昧になります。
const keyedBlockThreshold = 0.5

// isKeyedItem は先頭がキー (シンボルか文字列) のリストかどうかを返します。
func isKeyedItem(n Node) bool {
	return n.Kind == NodeList && len(n.Children) > 0 && n.Children[0].isKey()
}

// withoutComments はコメントノードを取り除いた要素を返します。
func withoutComments(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind != NodeComment {
			out = append(out, n)
		}
	}
	return out
}

// isKeyValueBlock は要素の並びがキーと値の組の集まりに見えるかどうかを判定します。
func isKeyValueBlock(nodes []Node) bool {
	items := withoutComments(nodes)
	if len(items) == 0 {
		return false
	}
	keyed := 0
	for _, n := range items {
		if isKeyedItem(n) {
			keyed++
		}
	}
	return keyed > 0 && float64(keyed)/float64(len(items)) > keyedBlockThreshold
}

// convertValue はノードを Value に変換します。
func convertValue(n Node) Value {
	switch n.Kind {
	case NodeNumber:
		return n.Number
	case NodeList:
		if isKeyValueBlock(n.Children) {
			return convertBlock(n.Children)
		}
		items := withoutComments(n.Children)
		arr := make([]Value, 0, len(items))
		for _, item := range items {
			arr = append(arr, convertValue(item))
		}
		return arr
	default:
		return n.Text
	}
}

// convertBlock はキー付きリストの並びをレコードに変換します。
// キーのない要素は捨て、同じキーが複数ある場合は後のものが優先されます。
func convertBlock(nodes []Node) map[string]Value {
	rec := make(map[string]Value)
	for _, n := range nodes {
		if !isKeyedItem(n) {
			continue
		}
		key := n.Children[0].Text
		rest := withoutComments(n.Children[1:])

		switch {
		case len(rest) == 0:
			rec[key] = true
		case len(rest) == 1:
			rec[key] = convertValue(rest[0])
		case isKeyValueBlock(rest):
			rec[key] = convertBlock(rest)
		default:
			arr := make([]Value, 0, len(rest))
			for _, item := range rest {
				arr = append(arr, convertValue(item))
			}
			rec[key] = arr
		}
	}
	return rec
}
