package crypto

const (
	pmModulus    = 2147483647 // 2^31 - 1
	pmMultiplier = 16807
	pmQ          = 127773 // pmModulus / pmMultiplier
	pmR          = 2836   // pmModulus % pmMultiplier
)

// ParkMiller は Park–Miller (Lehmer) 乗算合同法の疑似乱数生成器です。
// Schrage の分解で桁あふれを避けて次の状態を計算します。
type ParkMiller struct {
	state uint32
}

// NewParkMiller は指定されたシードで ParkMiller を初期化して返します。
func NewParkMiller(seed uint32) *ParkMiller {
	return &ParkMiller{state: seed}
}

// Next は状態を1つ進め、新しい状態を返します。
func (p *ParkMiller) Next() uint32 {
	p.state = advanceParkMiller(p.state)
	return p.state
}

// advanceParkMiller は状態を1ステップ進めます。
// シードは任意の32ビット値なので 2^31 以上でも同じ結果になるよう64ビットで計算します。
func advanceParkMiller(state uint32) uint32 {
	s := int64(state)
	hi := s / pmQ
	lo := s - hi*pmQ
	next := lo*pmMultiplier - hi*pmR
	if next <= 0 {
		next += pmModulus
	}
	return uint32(next)
}
