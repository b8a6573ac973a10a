package kuznyechik

// roundKeys is the expanded key K_1..K_10.
type roundKeys [numRounds]block

// expand derives the round keys from key.  K_1 and K_2 are the halves of the
// key; every following pair comes out of eight Feistel rounds F[C_i].
func (rk *roundKeys) expand(key *[KeySize]byte) {
	var a, b block
	copy(a[:], key[:BlockSize])
	copy(b[:], key[BlockSize:])
	rk[0], rk[1] = a, b

	for i := 0; i < len(keyConsts); i++ {
		t := a
		lsx(&t, &keyConsts[i])
		xorBlock(&t, &b)
		a, b = t, a
		if (i+1)%8 == 0 {
			n := (i + 1) / 4
			rk[n], rk[n+1] = a, b
		}
	}
}

// wipe zeroes the round keys.
func (rk *roundKeys) wipe() {
	*rk = roundKeys{}
}
