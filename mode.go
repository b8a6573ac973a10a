package kuznyechik

import (
	"crypto/subtle"
	"fmt"

	"github.com/etclab/mu"
)

// NonceSize is the CTR nonce size in bytes.  The initial counter block is
// the nonce followed by eight zero bytes.
const NonceSize = BlockSize / 2

// Mode selects the mode of operation of a [CipherContext].
type Mode int

const (
	ECB Mode = iota
	CBC
	CFB
	OFB
	CTR
	// CTRACPKM is CTR with ACPKM key meshing every mesh section.  Without a
	// mesh section it is identical to CTR.
	CTRACPKM
)

func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	case CFB:
		return "CFB"
	case OFB:
		return "OFB"
	case CTR:
		return "CTR"
	case CTRACPKM:
		return "CTR-ACPKM"
	default:
		return "Mode(" + fmt.Sprint(int(m)) + ")"
	}
}

func (m Mode) valid() bool { return m >= ECB && m <= CTRACPKM }

// stream reports whether m turns the block cipher into a stream cipher.
func (m Mode) stream() bool { return m == CFB || m == OFB || m == CTR || m == CTRACPKM }

func (m Mode) checkIV(n int) error {
	switch m {
	case ECB:
		if n == 0 {
			return nil
		}
	case CBC, CFB, OFB:
		if n == BlockSize {
			return nil
		}
	case CTR, CTRACPKM:
		if n == NonceSize || n == BlockSize {
			return nil
		}
	}
	return IVSizeError(n)
}

type ctxState int

const (
	stateInitialized ctxState = iota
	stateStreaming
	stateFinalized
)

// CipherContext is one encryption or decryption stream.  It is not safe for
// concurrent use.
//
// ECB and CBC contexts buffer input until a full block is available.  The
// stream modes (CFB, OFB, CTR, CTR-ACPKM) return exactly as many bytes as
// they are given, so Update is independent of how the input is chunked.
type CipherContext struct {
	mode    Mode
	decrypt bool
	state   ctxState
	wiped   bool

	rk     roundKeys
	initRK roundKeys

	// iv is the counter (CTR), the previous ciphertext block (CBC), the
	// previous keystream block (OFB) or the feedback register (CFB).
	iv     block
	initIV block

	ks    block
	ksOff int

	carry  block
	ncarry int

	// section is the mesh section in bytes; num counts the keystream bytes
	// generated since the last mesh.
	section int
	num     int
}

// NewEncrypter returns a context that encrypts with key in the given mode.
// ECB takes no IV; CBC, CFB and OFB take a [BlockSize] IV; CTR and
// CTR-ACPKM take either a [NonceSize] nonce or a full initial counter block.
func NewEncrypter(mode Mode, key, iv []byte) (*CipherContext, error) {
	return newContext(mode, false, key, iv)
}

// NewDecrypter is like [NewEncrypter] but returns a decrypting context.
func NewDecrypter(mode Mode, key, iv []byte) (*CipherContext, error) {
	return newContext(mode, true, key, iv)
}

func newContext(mode Mode, decrypt bool, key, iv []byte) (*CipherContext, error) {
	if !mode.valid() {
		return nil, ModeError(mode)
	}
	c := &CipherContext{mode: mode, decrypt: decrypt}
	if err := c.Init(key, iv); err != nil {
		return nil, err
	}
	return c, nil
}

// Mode returns the mode of operation of c.
func (c *CipherContext) Mode() Mode { return c.mode }

// BlockSize returns the cipher's block size.
func (c *CipherContext) BlockSize() int { return BlockSize }

// Init re-keys c with a new key and IV and resets all stream state.  The
// mesh section, if any, is kept.  Init fails with [ErrStreaming] while a
// stream is in progress.
func (c *CipherContext) Init(key, iv []byte) error {
	if c.state == stateStreaming {
		return ErrStreaming
	}
	if len(key) != KeySize {
		return KeySizeError(len(key))
	}
	if err := c.mode.checkIV(len(iv)); err != nil {
		return err
	}

	c.initRK.expand((*[KeySize]byte)(key))
	c.initIV = block{}
	copy(c.initIV[:], iv)
	c.wiped = false
	c.Reset()
	return nil
}

// Reset returns c to the key and IV it was initialized with.  A wiped
// context stays finalized until Init gives it a new key.
func (c *CipherContext) Reset() {
	if c.wiped {
		return
	}
	c.rk = c.initRK
	c.iv = c.initIV
	c.ks = block{}
	c.ksOff = BlockSize
	c.carry = block{}
	c.ncarry = 0
	c.num = 0
	c.state = stateInitialized
}

// Wipe zeroes all key material and stream state held by c.  The context is
// unusable afterwards until Init is called.
func (c *CipherContext) Wipe() {
	c.wiped = true
	c.rk.wipe()
	c.initRK.wipe()
	c.iv, c.initIV, c.ks, c.carry = block{}, block{}, block{}, block{}
	c.ncarry = 0
	c.state = stateFinalized
}

// SetMeshSection sets the number of bytes processed under each key of a
// CTR-ACPKM stream.  n must be a positive multiple of [BlockSize], and the
// call must precede the first Update.
func (c *CipherContext) SetMeshSection(n int) error {
	if c.mode != CTRACPKM {
		return fmt.Errorf("%w: %v mode does not support key meshing", ErrConfig, c.mode)
	}
	if c.state != stateInitialized {
		return ErrMeshAfterUpdate
	}
	if err := checkSection(n); err != nil {
		return err
	}
	c.section = n
	return nil
}

func checkSection(n int) error {
	if n <= 0 || n%BlockSize != 0 {
		return MeshSectionError(n)
	}
	return nil
}

// Update processes src and returns the output that is ready.  It may be
// called any number of times before Final.  An empty src does not start
// the stream.
func (c *CipherContext) Update(src []byte) ([]byte, error) {
	if c.state == stateFinalized {
		return nil, ErrFinalized
	}
	if len(src) == 0 {
		return nil, nil
	}
	c.state = stateStreaming

	if !c.mode.stream() {
		return c.updateBlocks(src), nil
	}
	dst := make([]byte, len(src))
	c.xorKeyStream(dst, src)
	return dst, nil
}

// Final ends the stream.  In ECB and CBC mode it fails with
// [ErrNotFullBlocks] if a partial block is still buffered; the stream modes
// have no pending output.  The context must be Reset or re-initialized
// before it can be used again.
func (c *CipherContext) Final() ([]byte, error) {
	if c.state == stateFinalized {
		return nil, ErrFinalized
	}
	c.state = stateFinalized

	if c.ncarry != 0 {
		n := c.ncarry
		c.carry = block{}
		c.ncarry = 0
		return nil, fmt.Errorf("%w (%d bytes left over)", ErrNotFullBlocks, n)
	}
	return nil, nil
}

// XORKeyStream satisfies the [cipher.Stream] interface for the stream modes.
// dst and src may overlap entirely.
func (c *CipherContext) XORKeyStream(dst, src []byte) {
	if !c.mode.stream() {
		mu.Panicf("kuznyechik: XORKeyStream called in %v mode", c.mode)
	}
	if len(dst) < len(src) {
		mu.Panicf("kuznyechik: output smaller than input")
	}
	if c.state == stateFinalized {
		mu.Panicf("kuznyechik: XORKeyStream on a finalized context")
	}
	if len(src) == 0 {
		return
	}
	c.state = stateStreaming
	c.xorKeyStream(dst[:len(src)], src)
}

// CryptBlocks satisfies the [cipher.BlockMode] interface for ECB and CBC.
// src must be a multiple of the block size and no partial block may be
// buffered by a previous Update.
func (c *CipherContext) CryptBlocks(dst, src []byte) {
	if c.mode.stream() {
		mu.Panicf("kuznyechik: CryptBlocks called in %v mode", c.mode)
	}
	if len(src)%BlockSize != 0 || c.ncarry != 0 {
		mu.Panicf("kuznyechik: input not full blocks")
	}
	if len(dst) < len(src) {
		mu.Panicf("kuznyechik: output smaller than input")
	}
	if c.state == stateFinalized {
		mu.Panicf("kuznyechik: CryptBlocks on a finalized context")
	}
	c.state = stateStreaming
	for i := 0; i < len(src); i += BlockSize {
		c.cryptBlock((*block)(dst[i:]), (*block)(src[i:]))
	}
}

func (c *CipherContext) updateBlocks(src []byte) []byte {
	out := make([]byte, (c.ncarry+len(src))/BlockSize*BlockSize)
	dst := out

	if c.ncarry > 0 {
		n := copy(c.carry[c.ncarry:], src)
		c.ncarry += n
		src = src[n:]
		if c.ncarry < BlockSize {
			return out
		}
		c.cryptBlock((*block)(dst), &c.carry)
		dst = dst[BlockSize:]
		c.ncarry = 0
	}

	for len(src) >= BlockSize {
		c.cryptBlock((*block)(dst), (*block)(src))
		dst = dst[BlockSize:]
		src = src[BlockSize:]
	}
	c.ncarry = copy(c.carry[:], src)
	return out
}

// cryptBlock runs one ECB or CBC step.  dst and src may be the same block.
func (c *CipherContext) cryptBlock(dst, src *block) {
	in := *src
	switch {
	case c.mode == ECB && c.decrypt:
		decryptBlock(&c.rk, dst, &in)
	case c.mode == ECB:
		encryptBlock(&c.rk, dst, &in)
	case c.decrypt:
		decryptBlock(&c.rk, dst, &in)
		xorBlock(dst, &c.iv)
		c.iv = in
	default:
		xorBlock(&in, &c.iv)
		encryptBlock(&c.rk, dst, &in)
		c.iv = *dst
	}
}

func (c *CipherContext) xorKeyStream(dst, src []byte) {
	for len(src) > 0 {
		if c.ksOff == BlockSize {
			c.refill()
		}
		n := min(len(src), BlockSize-c.ksOff)
		if c.mode == CFB && c.decrypt {
			copy(c.iv[c.ksOff:], src[:n])
		}
		subtle.XORBytes(dst[:n], src[:n], c.ks[c.ksOff:c.ksOff+n])
		if c.mode == CFB && !c.decrypt {
			copy(c.iv[c.ksOff:], dst[:n])
		}
		c.ksOff += n
		dst = dst[n:]
		src = src[n:]
	}
}

// refill produces the next keystream block.  In CTR-ACPKM the key is meshed
// first when the current section is used up, so meshing always falls on a
// block boundary.
func (c *CipherContext) refill() {
	switch c.mode {
	case CTR, CTRACPKM:
		if c.section > 0 && c.num >= c.section {
			c.rk.mesh()
			c.num = 0
		}
		encryptBlock(&c.rk, &c.ks, &c.iv)
		incCounter(&c.iv)
		c.num += BlockSize
	case OFB:
		encryptBlock(&c.rk, &c.ks, &c.iv)
		c.iv = c.ks
	case CFB:
		encryptBlock(&c.rk, &c.ks, &c.iv)
	}
	c.ksOff = 0
}
