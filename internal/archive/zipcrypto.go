package archive

import (
	"bufio"
	"compress/flate"
	"encoding/binary"
	"io"

	"github.com/yeka/zip"
)

const zipCryptoHeaderLen = 12

var crc32Tab [256]uint32

func init() {
	for i := range crc32Tab {
		c := uint32(i)
		for j := 0; j < 8; j++ {
			if c&1 != 0 {
				c = (c >> 1) ^ 0xedb88320
			} else {
				c >>= 1
			}
		}
		crc32Tab[i] = c
	}
}

// zipCryptoKeys is the traditional PKWARE running key state.
type zipCryptoKeys struct {
	k0, k1, k2 uint32
}

func newZipCryptoKeys(password string) zipCryptoKeys {
	k := zipCryptoKeys{0x12345678, 0x23456789, 0x34567890}
	for i := 0; i < len(password); i++ {
		k.update(password[i])
	}
	return k
}

func (k *zipCryptoKeys) update(b byte) {
	k.k0 = crc32Tab[(k.k0^uint32(b))&0xff] ^ (k.k0 >> 8)
	k.k1 = (k.k1+(k.k0&0xff))*0x08088405 + 1
	k.k2 = crc32Tab[(k.k2^(k.k1>>24))&0xff] ^ (k.k2 >> 8)
}

func (k *zipCryptoKeys) decryptByte(c byte) byte {
	temp := k.k2 | 2
	p := c ^ byte((temp*(temp^1))>>8)
	k.update(p)
	return p
}

// zipCryptoDecryptor decrypts ZipCrypto data read from src.
// Implements io.Reader so it can feed directly into compress/flate.
type zipCryptoDecryptor struct {
	src  io.Reader
	keys zipCryptoKeys
}

func (d *zipCryptoDecryptor) Read(p []byte) (int, error) {
	n, err := d.src.Read(p)
	for i := 0; i < n; i++ {
		p[i] = d.keys.decryptByte(p[i])
	}
	return n, err
}

// isZipCrypto reports whether f uses traditional PKWARE encryption. WinZip
// AES entries set the same flag bit, and the reader replaces their method 99
// with the inner compression method, so the AES extra record decides.
func isZipCrypto(f *zip.File) bool {
	const encrypted, strong = 0x1, 0x40
	if f.Flags&encrypted == 0 || f.Flags&strong != 0 || f.Method == 99 {
		return false
	}
	return !hasExtraField(f.Extra, winZipAESExtraID)
}

const winZipAESExtraID = 0x9901

// hasExtraField walks the little-endian id/size records of a ZIP extra field.
func hasExtraField(extra []byte, id uint16) bool {
	for len(extra) >= 4 {
		tag := binary.LittleEndian.Uint16(extra[0:2])
		size := int(binary.LittleEndian.Uint16(extra[2:4]))
		if tag == id {
			return true
		}
		if len(extra) < 4+size {
			return false
		}
		extra = extra[4+size:]
	}
	return false
}

// openZipCrypto returns a reader over the decoded content of a stored or
// deflated ZipCrypto entry. The encryption header's check byte rejects
// about 255 of every 256 wrong passwords before any payload is touched.
func openZipCrypto(ra io.ReaderAt, f *zip.File, password string) (io.Reader, bool) {
	if f.Method != zip.Store && f.Method != zip.Deflate {
		return nil, false
	}
	if f.CompressedSize64 < zipCryptoHeaderLen {
		return nil, false
	}
	off, err := f.DataOffset()
	if err != nil {
		return nil, false
	}

	var header [zipCryptoHeaderLen]byte
	if _, err := ra.ReadAt(header[:], off); err != nil {
		return nil, false
	}

	keys := newZipCryptoKeys(password)
	var last byte
	for i := range header {
		last = keys.decryptByte(header[i])
	}
	// the check byte is the CRC high byte, or the DOS time high byte when
	// the entry uses a data descriptor
	if last != byte(f.CRC32>>24) && last != byte(f.ModifiedTime>>8) {
		return nil, false
	}

	body := io.NewSectionReader(ra, off+zipCryptoHeaderLen, int64(f.CompressedSize64)-zipCryptoHeaderLen)
	dec := &zipCryptoDecryptor{src: bufio.NewReaderSize(body, 32*1024), keys: keys}
	if f.Method == zip.Store {
		return dec, true
	}
	return flate.NewReader(dec), true
}
