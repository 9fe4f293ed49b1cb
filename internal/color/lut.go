package color

// decodeLUT maps every sRGB byte to its linear value. 1KB.
var decodeLUT [256]float32

// encodeLUT maps 12-bit quantised linear values to sRGB bytes.
// 4096 entries keep the error within one step of the exact curve.
var encodeLUT [lutSize]uint8

const lutSize = 4096

func init() {
	for i := range decodeLUT {
		decodeLUT[i] = Decode(uint8(i))
	}
	for i := range encodeLUT {
		encodeLUT[i] = Encode(float32(i) / (lutSize - 1))
	}
}

// EncodeLUT converts linear to sRGB with a table lookup.
//
// Input is clamped to [0,1]. The result is within one step of Encode;
// for l = 0.5 it returns 188 like the exact path.
func EncodeLUT(l float32) uint8 {
	if !(l > 0) {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return encodeLUT[int(l*(lutSize-1)+0.5)]
}

// DecodeLUT converts sRGB to linear with a table lookup. Bit-identical to
// Decode.
func DecodeLUT(v uint8) float32 {
	return decodeLUT[v]
}
