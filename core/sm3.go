package core

// sm3Sum implements the SM3 cryptographic hash function (GB/T 32905-2016).
// No example repo in the pack imports an SM3 library and none is in the
// teacher's transitive module graph (see DESIGN.md "Host-boundary
// helpers"), so this is a self-contained block-compression function
// rather than a dropped feature.

var sm3IV = [8]uint32{
	0x7380166f, 0x4914b2b9, 0x172442d7, 0xda8a0600,
	0xa96f30bc, 0x163138aa, 0xe38dee4d, 0xb0fb0e4e,
}

func sm3RotL(x uint32, n uint) uint32 {
	n &= 31
	return (x << n) | (x >> (32 - n))
}

func sm3T(j int) uint32 {
	if j < 16 {
		return 0x79cc4519
	}
	return 0x7a879d8a
}

func sm3FF(x, y, z uint32, j int) uint32 {
	if j < 16 {
		return x ^ y ^ z
	}
	return (x & y) | (x & z) | (y & z)
}

func sm3GG(x, y, z uint32, j int) uint32 {
	if j < 16 {
		return x ^ y ^ z
	}
	return (x & y) | (^x & z)
}

func sm3P0(x uint32) uint32 { return x ^ sm3RotL(x, 9) ^ sm3RotL(x, 17) }
func sm3P1(x uint32) uint32 { return x ^ sm3RotL(x, 15) ^ sm3RotL(x, 23) }

func sm3Pad(msg []byte) []byte {
	bitLen := uint64(len(msg)) * 8
	out := append([]byte(nil), msg...)
	out = append(out, 0x80)
	for len(out)%64 != 56 {
		out = append(out, 0)
	}
	for i := 7; i >= 0; i-- {
		out = append(out, byte(bitLen>>(uint(i)*8)))
	}
	return out
}

func sm3Compress(v [8]uint32, block []byte) [8]uint32 {
	var w [68]uint32
	for j := 0; j < 16; j++ {
		w[j] = uint32(block[j*4])<<24 | uint32(block[j*4+1])<<16 | uint32(block[j*4+2])<<8 | uint32(block[j*4+3])
	}
	for j := 16; j < 68; j++ {
		w[j] = sm3P1(w[j-16]^w[j-9]^sm3RotL(w[j-3], 15)) ^ sm3RotL(w[j-13], 7) ^ w[j-6]
	}
	var w1 [64]uint32
	for j := 0; j < 64; j++ {
		w1[j] = w[j] ^ w[j+4]
	}

	a, b, c, d, e, f, g, h := v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]
	for j := 0; j < 64; j++ {
		ss1 := sm3RotL(sm3RotL(a, 12)+e+sm3RotL(sm3T(j), uint(j%32)), 7)
		ss2 := ss1 ^ sm3RotL(a, 12)
		tt1 := sm3FF(a, b, c, j) + d + ss2 + w1[j]
		tt2 := sm3GG(e, f, g, j) + h + ss1 + w[j]
		d = c
		c = sm3RotL(b, 9)
		b = a
		a = tt1
		h = g
		g = sm3RotL(f, 19)
		f = e
		e = sm3P0(tt2)
	}
	return [8]uint32{
		v[0] ^ a, v[1] ^ b, v[2] ^ c, v[3] ^ d,
		v[4] ^ e, v[5] ^ f, v[6] ^ g, v[7] ^ h,
	}
}

func sm3Sum(msg []byte) [32]byte {
	v := sm3IV
	padded := sm3Pad(msg)
	for off := 0; off < len(padded); off += 64 {
		v = sm3Compress(v, padded[off:off+64])
	}
	var out [32]byte
	for i, word := range v {
		out[i*4] = byte(word >> 24)
		out[i*4+1] = byte(word >> 16)
		out[i*4+2] = byte(word >> 8)
		out[i*4+3] = byte(word)
	}
	return out
}
