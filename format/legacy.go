package format

// MaskKind selects which legacy bit mask table to consult. It
// corresponds to the kind of pixel format declared by a container.
type MaskKind uint8

const (
	MaskRGB MaskKind = iota
	MaskLuminance
	MaskAlpha
)

var fourCCs = map[[4]byte]Texture{
	{'D', 'X', 'T', '1'}: DXGIBC1UNorm.Texture(),
	{'D', 'X', 'T', '2'}: DXGIBC2UNorm.Texture(),
	{'D', 'X', 'T', '3'}: DXGIBC2UNorm.Texture(),
	{'D', 'X', 'T', '4'}: DXGIBC3UNorm.Texture(),
	{'D', 'X', 'T', '5'}: DXGIBC3UNorm.Texture(),
	{'A', 'T', 'I', '1'}: DXGIBC4UNorm.Texture(),
	{'B', 'C', '4', 'U'}: DXGIBC4UNorm.Texture(),
	{'B', 'C', '4', 'S'}: DXGIBC4SNorm.Texture(),
	{'A', 'T', 'I', '2'}: DXGIBC5UNorm.Texture(),
	{'B', 'C', '5', 'U'}: DXGIBC5UNorm.Texture(),
	{'B', 'C', '5', 'S'}: DXGIBC5SNorm.Texture(),
	{'R', 'G', 'B', 'G'}: DXGIR8G8B8G8UNorm.Texture(),
	{'G', 'R', 'G', 'B'}: DXGIG8R8G8B8UNorm.Texture(),
	{'U', 'Y', 'V', 'Y'}: Compressed{Scheme: UYVY},
	{'Y', 'U', 'Y', '2'}: DXGIYUY2.Texture(),
}

// LookupFourCC returns the format identified by a legacy four
// character code.
func LookupFourCC(code [4]byte) (Texture, bool) {
	t, ok := fourCCs[code]
	return t, ok
}

// d3dFormats are the legacy numeric format ids that can be told apart
// from four character codes when stored in the same field.
var d3dFormats = map[uint32]Texture{
	36:  DXGIR16G16B16A16UNorm.Texture(),
	110: DXGIR16G16B16A16SNorm.Texture(),
	111: DXGIR16Float.Texture(),
	112: DXGIR16G16Float.Texture(),
	113: DXGIR16G16B16A16Float.Texture(),
	114: DXGIR32Float.Texture(),
	115: DXGIR32G32Float.Texture(),
	116: DXGIR32G32B32A32Float.Texture(),
}

// LookupD3D returns the format identified by a legacy numeric format
// id.
func LookupD3D(id uint32) (Texture, bool) {
	t, ok := d3dFormats[id]
	return t, ok
}

var masks = [...]map[Mask]Texture{
	MaskRGB: {
		{32, 0x000000FF, 0x0000FF00, 0x00FF0000, 0xFF000000}: DXGIR8G8B8A8UNorm.Texture(),
		{32, 0x00FF0000, 0x0000FF00, 0x000000FF, 0xFF000000}: DXGIB8G8R8A8UNorm.Texture(),
		{32, 0x00FF0000, 0x0000FF00, 0x000000FF, 0x00000000}: DXGIB8G8R8X8UNorm.Texture(),
		{32, 0x000003FF, 0x000FFC00, 0x3FF00000, 0xC0000000}: DXGIR10G10B10A2UNorm.Texture(),

		// Written by older tools with red and blue swapped.
		{32, 0x3FF00000, 0x000FFC00, 0x000003FF, 0xC0000000}: DXGIR10G10B10A2UNorm.Texture(),

		{32, 0x0000FFFF, 0xFFFF0000, 0x00000000, 0x00000000}: DXGIR16G16UNorm.Texture(),
		{32, 0xFFFFFFFF, 0x00000000, 0x00000000, 0x00000000}: DXGIR32Float.Texture(),
		{24, 0x000000FF, 0x0000FF00, 0x00FF0000, 0x00000000}: Uncompressed{Repr: ReprUNorm, Channels: RGB(8, 8, 8)},
		{24, 0x00FF0000, 0x0000FF00, 0x000000FF, 0x00000000}: Uncompressed{Repr: ReprUNorm, Channels: BGR(8, 8, 8)},
		{16, 0x00007C00, 0x000003E0, 0x0000001F, 0x00008000}: DXGIB5G5R5A1UNorm.Texture(),
		{16, 0x0000F800, 0x000007E0, 0x0000001F, 0x00000000}: DXGIB5G6R5UNorm.Texture(),
		{16, 0x00000F00, 0x000000F0, 0x0000000F, 0x0000F000}: DXGIB4G4R4A4UNorm.Texture(),
	},
	MaskLuminance: {
		{8, 0x000000FF, 0x00000000, 0x00000000, 0x00000000}:  DXGIR8UNorm.Texture(),
		{16, 0x0000FFFF, 0x00000000, 0x00000000, 0x00000000}: DXGIR16UNorm.Texture(),
		{16, 0x000000FF, 0x00000000, 0x00000000, 0x0000FF00}: DXGIR8G8UNorm.Texture(),
	},
	MaskAlpha: {
		{8, 0x00000000, 0x00000000, 0x00000000, 0x000000FF}: DXGIA8UNorm.Texture(),
	},
}

// LookupMask returns the format whose common legacy bit layout for
// the given kind matches m exactly.
func LookupMask(kind MaskKind, m Mask) (Texture, bool) {
	if int(kind) >= len(masks) {
		return nil, false
	}
	t, ok := masks[kind][m]
	return t, ok
}
