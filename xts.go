package kuznyechik

import (
	"golang.org/x/crypto/xts"

	"github.com/etclab/mu"
)

// XTSKeySize is the size of a Kuznyechik-XTS key: the data key followed by
// the tweak key.
const XTSKeySize = 2 * KeySize

// NewXTS returns a Kuznyechik-XTS (IEEE P1619) sector cipher.
func NewXTS(key []byte) (*xts.Cipher, error) {
	if len(key) != XTSKeySize {
		return nil, KeySizeError(len(key))
	}
	return xts.NewCipher(NewCipher, key)
}

// EncryptSectors encrypts src, a run of consecutive sectors of sectorSize
// bytes starting at sector number first, into dst.
func EncryptSectors(c *xts.Cipher, dst, src []byte, sectorSize int, first uint64) {
	checkSectors(dst, src, sectorSize)
	for i := 0; i < len(src); i += sectorSize {
		c.Encrypt(dst[i:i+sectorSize], src[i:i+sectorSize], first)
		first++
	}
}

// DecryptSectors is the inverse of [EncryptSectors].
func DecryptSectors(c *xts.Cipher, dst, src []byte, sectorSize int, first uint64) {
	checkSectors(dst, src, sectorSize)
	for i := 0; i < len(src); i += sectorSize {
		c.Decrypt(dst[i:i+sectorSize], src[i:i+sectorSize], first)
		first++
	}
}

func checkSectors(dst, src []byte, sectorSize int) {
	if sectorSize <= 0 || sectorSize%BlockSize != 0 {
		mu.Panicf("kuznyechik: invalid sector size %d", sectorSize)
	}
	if len(src)%sectorSize != 0 {
		mu.Panicf("kuznyechik: input is not a whole number of sectors")
	}
	if len(dst) < len(src) {
		mu.Panicf("kuznyechik: output smaller than input")
	}
}
