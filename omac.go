package kuznyechik

import "crypto/subtle"

// MACOption configures a [MAC].
type MACOption func(*macConfig)

type macConfig struct {
	section       int
	masterSection int
	tagSize       int
	tagSet        bool
}

// WithMeshSection turns the MAC into OMAC-ACPKM: a fresh key is taken from
// the ACPKM-Master stream every n processed bytes.  n must be a positive
// multiple of [BlockSize].
func WithMeshSection(n int) MACOption {
	return func(c *macConfig) {
		c.section = n
	}
}

// WithMasterSection sets the section size T*, in bytes, of the ACPKM-Master
// stream that feeds OMAC-ACPKM.  The default is [DefaultMasterSection].
func WithMasterSection(n int) MACOption {
	return func(c *macConfig) {
		c.masterSection = n
	}
}

// WithTagSize sets the length of the tag returned by Sum.  The default is
// [DefaultOMACTagSize] for OMAC and [BlockSize] for OMAC-ACPKM.
func WithTagSize(n int) MACOption {
	return func(c *macConfig) {
		c.tagSize = n
		c.tagSet = true
	}
}

// DefaultOMACTagSize is the tag size of a plain OMAC when none is
// configured.
const DefaultOMACTagSize = 8

// MAC computes OMAC (GOST R 34.13-2015 section 5.6) or OMAC-ACPKM
// (R 1323565.1.017-2018).  It satisfies [hash.Hash]; Sum does not change the
// state.  A MAC is not safe for concurrent use.
type MAC struct {
	rk     roundKeys
	k1, k2 block

	acc  block
	buf  block
	nbuf int

	// OMAC-ACPKM only.  master produces K || K1 for every section.
	section int
	num     int
	master  CipherContext

	tagSize   int
	finalized bool
	wiped     bool
}

// NewMAC returns an OMAC keyed with key, or OMAC-ACPKM if
// [WithMeshSection] is given.
func NewMAC(key []byte, opts ...MACOption) (*MAC, error) {
	cfg := macConfig{masterSection: DefaultMasterSection}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.tagSet {
		cfg.tagSize = DefaultOMACTagSize
		if cfg.section != 0 {
			cfg.tagSize = BlockSize
		}
	}

	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	if cfg.tagSize < 1 || cfg.tagSize > BlockSize {
		return nil, TagSizeError(cfg.tagSize)
	}

	m := &MAC{tagSize: cfg.tagSize}
	if cfg.section == 0 {
		m.rk.expand((*[KeySize]byte)(key))
		var l block
		encryptBlock(&m.rk, &l, &l)
		m.k1 = dbl(l)
		m.k2 = dbl(m.k1)
		return m, nil
	}

	if err := checkSection(cfg.section); err != nil {
		return nil, err
	}
	master, err := NewEncrypter(CTRACPKM, key, acpkmMasterIV[:])
	if err != nil {
		return nil, err
	}
	defer master.Wipe()
	if err := master.SetMeshSection(cfg.masterSection); err != nil {
		return nil, err
	}

	m.section = cfg.section
	m.master = *master
	m.rekey()
	return m, nil
}

// rekey takes the next key K and subkey K1 from the ACPKM-Master stream.
func (m *MAC) rekey() {
	var km [KeySize + BlockSize]byte
	m.master.xorKeyStream(km[:], km[:])
	m.rk.expand((*[KeySize]byte)(km[:]))
	copy(m.k1[:], km[KeySize:])
	m.k2 = dbl(m.k1)
	clear(km[:])
	m.num = 0
}

// dbl multiplies b by x in GF(2^128) with the reduction constant 0x87.
func dbl(b block) block {
	var out block
	var carry byte
	for i := BlockSize - 1; i >= 0; i-- {
		out[i] = b[i]<<1 | carry
		carry = b[i] >> 7
	}
	out[BlockSize-1] ^= 0x87 & -carry
	return out
}

// Size returns the configured tag size.
func (m *MAC) Size() int { return m.tagSize }

// BlockSize returns the cipher's block size.
func (m *MAC) BlockSize() int { return BlockSize }

// Update adds p to the authenticated message.
func (m *MAC) Update(p []byte) error {
	if m.finalized {
		return ErrFinalized
	}
	m.write(p)
	return nil
}

// Write satisfies [io.Writer].  It only fails after Final.
func (m *MAC) Write(p []byte) (int, error) {
	if err := m.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// write keeps the last block of the message buffered, since it cannot be
// processed before it is known to be the last one.
func (m *MAC) write(p []byte) {
	for len(p) > 0 {
		if m.nbuf == BlockSize {
			m.absorb(&m.buf)
			m.nbuf = 0
		}
		n := copy(m.buf[m.nbuf:], p)
		m.nbuf += n
		p = p[n:]
	}
}

func (m *MAC) absorb(b *block) {
	m.meshIfDue()
	xorBlock(&m.acc, b)
	encryptBlock(&m.rk, &m.acc, &m.acc)
	m.num += BlockSize
}

func (m *MAC) meshIfDue() {
	if m.section > 0 && m.num >= m.section {
		m.rekey()
	}
}

// tag finishes the computation on m and returns the full block.
func (m *MAC) tag() block {
	m.meshIfDue()
	last := m.buf
	if m.nbuf == BlockSize {
		xorBlock(&last, &m.k1)
	} else {
		last[m.nbuf] = 0x80
		clear(last[m.nbuf+1:])
		xorBlock(&last, &m.k2)
	}
	xorBlock(&last, &m.acc)
	encryptBlock(&m.rk, &last, &last)
	return last
}

// Final returns the first tagLen bytes of the tag and finalizes m.  Further
// writes fail with [ErrFinalized] until Reset.
func (m *MAC) Final(tagLen int) ([]byte, error) {
	if tagLen < 1 || tagLen > BlockSize {
		return nil, TagSizeError(tagLen)
	}
	if m.finalized {
		return nil, ErrFinalized
	}
	t := m.tag()
	m.finalized = true
	return append([]byte(nil), t[:tagLen]...), nil
}

// Sum appends the current tag, truncated to Size bytes, to b.  It does not
// change the underlying state.
func (m *MAC) Sum(b []byte) []byte {
	t := m.peek()
	return append(b, t[:m.tagSize]...)
}

// Verify reports whether tag is a prefix of the current tag.  The comparison
// is constant-time; tags shorter than one byte or longer than a block never
// verify.
func (m *MAC) Verify(tag []byte) bool {
	if len(tag) < 1 || len(tag) > BlockSize {
		return false
	}
	t := m.peek()
	return subtle.ConstantTimeCompare(t[:len(tag)], tag) == 1
}

func (m *MAC) peek() block {
	c := *m
	defer c.wipe()
	return c.tag()
}

// Reset restarts the computation with the initial key.  It has no effect
// on a wiped MAC.
func (m *MAC) Reset() {
	if m.wiped {
		return
	}
	m.acc, m.buf = block{}, block{}
	m.nbuf = 0
	m.finalized = false
	if m.section > 0 {
		m.master.Reset()
		m.rekey()
	}
}

// Wipe zeroes the key material held by m.  The MAC is unusable afterwards.
func (m *MAC) Wipe() {
	m.wipe()
	m.finalized = true
	m.wiped = true
}

func (m *MAC) wipe() {
	m.rk.wipe()
	m.k1, m.k2, m.acc, m.buf = block{}, block{}, block{}, block{}
	m.master.Wipe()
}
