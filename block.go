package kuznyechik

import (
	"crypto/cipher"

	"github.com/etclab/mu"
)

const (
	// BlockSize is the Kuznyechik block size in bytes.
	BlockSize = 16
	// KeySize is the Kuznyechik key size in bytes.
	KeySize = 32

	numRounds = 10
)

type block = [BlockSize]byte

func xorBlock(dst, src *block) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// lsx computes LSX[k](a) with table lookups: a is XORed with k, then
// substituted and linearly mixed.
func lsx(a *block, k *block) {
	var x block
	for i := range a {
		x[i] = a[i] ^ k[i]
	}
	var r block
	for i := range x {
		row := &lsTable[i][x[i]]
		for j := range r {
			r[j] ^= row[j]
		}
	}
	*a = r
}

// encryptBlock encrypts src into dst under the expanded key rk.  dst and src
// may point to the same block.
func encryptBlock(rk *roundKeys, dst, src *block) {
	x := *src
	for i := 0; i < numRounds-1; i++ {
		lsx(&x, &rk[i])
	}
	xorBlock(&x, &rk[numRounds-1])
	*dst = x
}

// decryptBlock is the inverse of encryptBlock.
func decryptBlock(rk *roundKeys, dst, src *block) {
	x := *src
	xorBlock(&x, &rk[numRounds-1])
	for i := numRounds - 2; i >= 0; i-- {
		var r block
		for j := range x {
			row := &lInvTable[j][x[j]]
			for k := range r {
				r[k] ^= row[k]
			}
		}
		for j := range r {
			r[j] = piInv[r[j]]
		}
		xorBlock(&r, &rk[i])
		x = r
	}
	*dst = x
}

// Cipher is an instance of Kuznyechik using a particular key.  It satisfies
// [cipher.Block].
type Cipher struct {
	rk roundKeys
}

// NewCipher creates and returns a new [cipher.Block].  The key must be
// exactly [KeySize] bytes.
func NewCipher(key []byte) (cipher.Block, error) {
	return newCipher(key)
}

func newCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	c := &Cipher{}
	c.rk.expand((*[KeySize]byte)(key))
	return c, nil
}

// BlockSize satisfies the [cipher.Block] interface.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt satisfies the [cipher.Block] interface.
func (c *Cipher) Encrypt(dst, src []byte) {
	checkBlockArgs("Encrypt", dst, src)
	encryptBlock(&c.rk, (*block)(dst), (*block)(src))
}

// Decrypt satisfies the [cipher.Block] interface.
func (c *Cipher) Decrypt(dst, src []byte) {
	checkBlockArgs("Decrypt", dst, src)
	decryptBlock(&c.rk, (*block)(dst), (*block)(src))
}

func checkBlockArgs(op string, dst, src []byte) {
	if len(src) < BlockSize {
		mu.Panicf("kuznyechik.%s: input not full block", op)
	}
	if len(dst) < BlockSize {
		mu.Panicf("kuznyechik.%s: output not full block", op)
	}
}
