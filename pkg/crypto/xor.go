package crypto

// XORKeystream は src の各バイトを next が返す鍵バイトで XOR して dst に書き込みます。
// dst は src 以上の長さが必要です。dst と src が同じスライスでも構いません。
func XORKeystream(dst, src []byte, next func() byte) {
	for i := range src {
		dst[i] = src[i] ^ next()
	}
}
