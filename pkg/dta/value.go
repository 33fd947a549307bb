package dta

// AsString は v が文字列の場合にその値を返します。
func AsString(v Value) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsNumber は v が数値の場合にその値を返します。
func AsNumber(v Value) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

// AsBool は v が真偽値の場合にその値を返します。
func AsBool(v Value) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// AsRecord は v がレコードの場合にその値を返します。
func AsRecord(v Value) (map[string]Value, bool) {
	m, ok := v.(map[string]Value)
	return m, ok
}

// AsArray は v が配列の場合にその値を返します。
func AsArray(v Value) ([]Value, bool) {
	a, ok := v.([]Value)
	return a, ok
}

// Lookup はレコードをキーの列に沿ってたどり、見つかった値を返します。
// 途中の値がレコードでない場合やキーがない場合は false を返します。
func Lookup(rec map[string]Value, path ...string) (Value, bool) {
	var cur Value = rec
	for _, key := range path {
		m, ok := AsRecord(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = m[key]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Text は Props をたどって文字列を返します。
func (e Entry) Text(path ...string) (string, bool) {
	v, ok := Lookup(e.Props, path...)
	if !ok {
		return "", false
	}
	return AsString(v)
}

// Number は Props をたどって数値を返します。
func (e Entry) Number(path ...string) (float64, bool) {
	v, ok := Lookup(e.Props, path...)
	if !ok {
		return 0, false
	}
	return AsNumber(v)
}

// Array は Props をたどって配列を返します。
func (e Entry) Array(path ...string) ([]Value, bool) {
	v, ok := Lookup(e.Props, path...)
	if !ok {
		return nil, false
	}
	return AsArray(v)
}
