package format

import "fmt"

// DXGI is the enumerated format id carried by the DX10 extension
// block. Only the values with a constant below are valid.
type DXGI uint32

const (
	DXGIUnknown                DXGI = 0
	DXGIR32G32B32A32Typeless   DXGI = 1
	DXGIR32G32B32A32Float      DXGI = 2
	DXGIR32G32B32A32UInt       DXGI = 3
	DXGIR32G32B32A32SInt       DXGI = 4
	DXGIR32G32B32Typeless      DXGI = 5
	DXGIR32G32B32Float         DXGI = 6
	DXGIR32G32B32UInt          DXGI = 7
	DXGIR32G32B32SInt          DXGI = 8
	DXGIR16G16B16A16Typeless   DXGI = 9
	DXGIR16G16B16A16Float      DXGI = 10
	DXGIR16G16B16A16UNorm      DXGI = 11
	DXGIR16G16B16A16UInt       DXGI = 12
	DXGIR16G16B16A16SNorm      DXGI = 13
	DXGIR16G16B16A16SInt       DXGI = 14
	DXGIR32G32Typeless         DXGI = 15
	DXGIR32G32Float            DXGI = 16
	DXGIR32G32UInt             DXGI = 17
	DXGIR32G32SInt             DXGI = 18
	DXGIR32G8X24Typeless       DXGI = 19
	DXGID32FloatS8X24UInt      DXGI = 20
	DXGIR32FloatX8X24Typeless  DXGI = 21
	DXGIX32TypelessG8X24UInt   DXGI = 22
	DXGIR10G10B10A2Typeless    DXGI = 23
	DXGIR10G10B10A2UNorm       DXGI = 24
	DXGIR10G10B10A2UInt        DXGI = 25
	DXGIR11G11B10Float         DXGI = 26
	DXGIR8G8B8A8Typeless       DXGI = 27
	DXGIR8G8B8A8UNorm          DXGI = 28
	DXGIR8G8B8A8UNormSRGB      DXGI = 29
	DXGIR8G8B8A8UInt           DXGI = 30
	DXGIR8G8B8A8SNorm          DXGI = 31
	DXGIR8G8B8A8SInt           DXGI = 32
	DXGIR16G16Typeless         DXGI = 33
	DXGIR16G16Float            DXGI = 34
	DXGIR16G16UNorm            DXGI = 35
	DXGIR16G16UInt             DXGI = 36
	DXGIR16G16SNorm            DXGI = 37
	DXGIR16G16SInt             DXGI = 38
	DXGIR32Typeless            DXGI = 39
	DXGID32Float               DXGI = 40
	DXGIR32Float               DXGI = 41
	DXGIR32UInt                DXGI = 42
	DXGIR32SInt                DXGI = 43
	DXGIR24G8Typeless          DXGI = 44
	DXGID24UNormS8UInt         DXGI = 45
	DXGIR24UNormX8Typeless     DXGI = 46
	DXGIX24TypelessG8UInt      DXGI = 47
	DXGIR8G8Typeless           DXGI = 48
	DXGIR8G8UNorm              DXGI = 49
	DXGIR8G8UInt               DXGI = 50
	DXGIR8G8SNorm              DXGI = 51
	DXGIR8G8SInt               DXGI = 52
	DXGIR16Typeless            DXGI = 53
	DXGIR16Float               DXGI = 54
	DXGID16UNorm               DXGI = 55
	DXGIR16UNorm               DXGI = 56
	DXGIR16UInt                DXGI = 57
	DXGIR16SNorm               DXGI = 58
	DXGIR16SInt                DXGI = 59
	DXGIR8Typeless             DXGI = 60
	DXGIR8UNorm                DXGI = 61
	DXGIR8UInt                 DXGI = 62
	DXGIR8SNorm                DXGI = 63
	DXGIR8SInt                 DXGI = 64
	DXGIA8UNorm                DXGI = 65
	DXGIR1UNorm                DXGI = 66
	DXGIR9G9B9E5SharedExp      DXGI = 67
	DXGIR8G8B8G8UNorm          DXGI = 68
	DXGIG8R8G8B8UNorm          DXGI = 69
	DXGIBC1Typeless            DXGI = 70
	DXGIBC1UNorm               DXGI = 71
	DXGIBC1UNormSRGB           DXGI = 72
	DXGIBC2Typeless            DXGI = 73
	DXGIBC2UNorm               DXGI = 74
	DXGIBC2UNormSRGB           DXGI = 75
	DXGIBC3Typeless            DXGI = 76
	DXGIBC3UNorm               DXGI = 77
	DXGIBC3UNormSRGB           DXGI = 78
	DXGIBC4Typeless            DXGI = 79
	DXGIBC4UNorm               DXGI = 80
	DXGIBC4SNorm               DXGI = 81
	DXGIBC5Typeless            DXGI = 82
	DXGIBC5UNorm               DXGI = 83
	DXGIBC5SNorm               DXGI = 84
	DXGIB5G6R5UNorm            DXGI = 85
	DXGIB5G5R5A1UNorm          DXGI = 86
	DXGIB8G8R8A8UNorm          DXGI = 87
	DXGIB8G8R8X8UNorm          DXGI = 88
	DXGIR10G10B10XRBiasA2UNorm DXGI = 89
	DXGIB8G8R8A8Typeless       DXGI = 90
	DXGIB8G8R8A8UNormSRGB      DXGI = 91
	DXGIB8G8R8X8Typeless       DXGI = 92
	DXGIB8G8R8X8UNormSRGB      DXGI = 93
	DXGIBC6HTypeless           DXGI = 94
	DXGIBC6HUF16               DXGI = 95
	DXGIBC6HSF16               DXGI = 96
	DXGIBC7Typeless            DXGI = 97
	DXGIBC7UNorm               DXGI = 98
	DXGIBC7UNormSRGB           DXGI = 99
	DXGIAYUV                   DXGI = 100
	DXGIY410                   DXGI = 101
	DXGIY416                   DXGI = 102
	DXGINV12                   DXGI = 103
	DXGIP010                   DXGI = 104
	DXGIP016                   DXGI = 105
	DXGIOpaque420              DXGI = 106
	DXGIYUY2                   DXGI = 107
	DXGIY210                   DXGI = 108
	DXGIY216                   DXGI = 109
	DXGINV11                   DXGI = 110
	DXGIAI44                   DXGI = 111
	DXGIIA44                   DXGI = 112
	DXGIP8                     DXGI = 113
	DXGIA8P8                   DXGI = 114
	DXGIB4G4R4A4UNorm          DXGI = 115
	DXGIP208                   DXGI = 130
	DXGIV208                   DXGI = 131
	DXGIV408                   DXGI = 132
)

type dxgiEntry struct {
	name    string
	texture Texture
}

var dxgiFormats = map[DXGI]dxgiEntry{
	DXGIUnknown:                {"UNKNOWN", Unknown(0)},
	DXGIR32G32B32A32Typeless:   {"R32G32B32A32_TYPELESS", un(ReprTypeless, RGBA(32, 32, 32, 32))},
	DXGIR32G32B32A32Float:      {"R32G32B32A32_FLOAT", un(ReprFloat, RGBA(32, 32, 32, 32))},
	DXGIR32G32B32A32UInt:       {"R32G32B32A32_UINT", un(ReprUInt, RGBA(32, 32, 32, 32))},
	DXGIR32G32B32A32SInt:       {"R32G32B32A32_SINT", un(ReprSInt, RGBA(32, 32, 32, 32))},
	DXGIR32G32B32Typeless:      {"R32G32B32_TYPELESS", un(ReprTypeless, RGB(32, 32, 32))},
	DXGIR32G32B32Float:         {"R32G32B32_FLOAT", un(ReprFloat, RGB(32, 32, 32))},
	DXGIR32G32B32UInt:          {"R32G32B32_UINT", un(ReprUInt, RGB(32, 32, 32))},
	DXGIR32G32B32SInt:          {"R32G32B32_SINT", un(ReprSInt, RGB(32, 32, 32))},
	DXGIR16G16B16A16Typeless:   {"R16G16B16A16_TYPELESS", un(ReprTypeless, RGBA(16, 16, 16, 16))},
	DXGIR16G16B16A16Float:      {"R16G16B16A16_FLOAT", un(ReprFloat, RGBA(16, 16, 16, 16))},
	DXGIR16G16B16A16UNorm:      {"R16G16B16A16_UNORM", un(ReprUNorm, RGBA(16, 16, 16, 16))},
	DXGIR16G16B16A16UInt:       {"R16G16B16A16_UINT", un(ReprUInt, RGBA(16, 16, 16, 16))},
	DXGIR16G16B16A16SNorm:      {"R16G16B16A16_SNORM", un(ReprSNorm, RGBA(16, 16, 16, 16))},
	DXGIR16G16B16A16SInt:       {"R16G16B16A16_SINT", un(ReprSInt, RGBA(16, 16, 16, 16))},
	DXGIR32G32Typeless:         {"R32G32_TYPELESS", un(ReprTypeless, RG(32, 32))},
	DXGIR32G32Float:            {"R32G32_FLOAT", un(ReprFloat, RG(32, 32))},
	DXGIR32G32UInt:             {"R32G32_UINT", un(ReprUInt, RG(32, 32))},
	DXGIR32G32SInt:             {"R32G32_SINT", un(ReprSInt, RG(32, 32))},
	DXGIR32G8X24Typeless:       {"R32G8X24_TYPELESS", sp(R32G8X24Typeless)},
	DXGID32FloatS8X24UInt:      {"D32_FLOAT_S8X24_UINT", sp(D32FloatS8X24UInt)},
	DXGIR32FloatX8X24Typeless:  {"R32_FLOAT_X8X24_TYPELESS", sp(R32FloatX8X24Typeless)},
	DXGIX32TypelessG8X24UInt:   {"X32_TYPELESS_G8X24_UINT", sp(X32TypelessG8X24UInt)},
	DXGIR10G10B10A2Typeless:    {"R10G10B10A2_TYPELESS", un(ReprTypeless, RGBA(10, 10, 10, 2))},
	DXGIR10G10B10A2UNorm:       {"R10G10B10A2_UNORM", un(ReprUNorm, RGBA(10, 10, 10, 2))},
	DXGIR10G10B10A2UInt:        {"R10G10B10A2_UINT", un(ReprUInt, RGBA(10, 10, 10, 2))},
	DXGIR11G11B10Float:         {"R11G11B10_FLOAT", un(ReprFloat, RGB(11, 11, 10))},
	DXGIR8G8B8A8Typeless:       {"R8G8B8A8_TYPELESS", un(ReprTypeless, RGBA(8, 8, 8, 8))},
	DXGIR8G8B8A8UNorm:          {"R8G8B8A8_UNORM", un(ReprUNorm, RGBA(8, 8, 8, 8))},
	DXGIR8G8B8A8UNormSRGB:      {"R8G8B8A8_UNORM_SRGB", un(ReprUNormSRGB, RGBA(8, 8, 8, 8))},
	DXGIR8G8B8A8UInt:           {"R8G8B8A8_UINT", un(ReprUInt, RGBA(8, 8, 8, 8))},
	DXGIR8G8B8A8SNorm:          {"R8G8B8A8_SNORM", un(ReprSNorm, RGBA(8, 8, 8, 8))},
	DXGIR8G8B8A8SInt:           {"R8G8B8A8_SINT", un(ReprSInt, RGBA(8, 8, 8, 8))},
	DXGIR16G16Typeless:         {"R16G16_TYPELESS", un(ReprTypeless, RG(16, 16))},
	DXGIR16G16Float:            {"R16G16_FLOAT", un(ReprFloat, RG(16, 16))},
	DXGIR16G16UNorm:            {"R16G16_UNORM", un(ReprUNorm, RG(16, 16))},
	DXGIR16G16UInt:             {"R16G16_UINT", un(ReprUInt, RG(16, 16))},
	DXGIR16G16SNorm:            {"R16G16_SNORM", un(ReprSNorm, RG(16, 16))},
	DXGIR16G16SInt:             {"R16G16_SINT", un(ReprSInt, RG(16, 16))},
	DXGIR32Typeless:            {"R32_TYPELESS", un(ReprTypeless, R(32))},
	DXGID32Float:               {"D32_FLOAT", sp(D32Float)},
	DXGIR32Float:               {"R32_FLOAT", un(ReprFloat, R(32))},
	DXGIR32UInt:                {"R32_UINT", un(ReprUInt, R(32))},
	DXGIR32SInt:                {"R32_SINT", un(ReprSInt, R(32))},
	DXGIR24G8Typeless:          {"R24G8_TYPELESS", un(ReprTypeless, RG(24, 8))},
	DXGID24UNormS8UInt:         {"D24_UNORM_S8_UINT", sp(D24UNormS8UInt)},
	DXGIR24UNormX8Typeless:     {"R24_UNORM_X8_TYPELESS", sp(R24UNormX8Typeless)},
	DXGIX24TypelessG8UInt:      {"X24_TYPELESS_G8_UINT", sp(X24TypelessG8UInt)},
	DXGIR8G8Typeless:           {"R8G8_TYPELESS", un(ReprTypeless, RG(8, 8))},
	DXGIR8G8UNorm:              {"R8G8_UNORM", un(ReprUNorm, RG(8, 8))},
	DXGIR8G8UInt:               {"R8G8_UINT", un(ReprUInt, RG(8, 8))},
	DXGIR8G8SNorm:              {"R8G8_SNORM", un(ReprSNorm, RG(8, 8))},
	DXGIR8G8SInt:               {"R8G8_SINT", un(ReprSInt, RG(8, 8))},
	DXGIR16Typeless:            {"R16_TYPELESS", un(ReprTypeless, R(16))},
	DXGIR16Float:               {"R16_FLOAT", un(ReprFloat, R(16))},
	DXGID16UNorm:               {"D16_UNORM", sp(D16UNorm)},
	DXGIR16UNorm:               {"R16_UNORM", un(ReprUNorm, R(16))},
	DXGIR16UInt:                {"R16_UINT", un(ReprUInt, R(16))},
	DXGIR16SNorm:               {"R16_SNORM", un(ReprSNorm, R(16))},
	DXGIR16SInt:                {"R16_SINT", un(ReprSInt, R(16))},
	DXGIR8Typeless:             {"R8_TYPELESS", un(ReprTypeless, R(8))},
	DXGIR8UNorm:                {"R8_UNORM", un(ReprUNorm, R(8))},
	DXGIR8UInt:                 {"R8_UINT", un(ReprUInt, R(8))},
	DXGIR8SNorm:                {"R8_SNORM", un(ReprSNorm, R(8))},
	DXGIR8SInt:                 {"R8_SINT", un(ReprSInt, R(8))},
	DXGIA8UNorm:                {"A8_UNORM", un(ReprUNorm, A(8))},
	DXGIR1UNorm:                {"R1_UNORM", un(ReprUNorm, R(1))},
	DXGIR9G9B9E5SharedExp:      {"R9G9B9E5_SHAREDEXP", sp(R9G9B9E5SharedExp)},
	DXGIR8G8B8G8UNorm:          {"R8G8_B8G8_UNORM", bc(R8G8B8G8, VariantNone)},
	DXGIG8R8G8B8UNorm:          {"G8R8_G8B8_UNORM", bc(G8R8G8B8, VariantNone)},
	DXGIBC1Typeless:            {"BC1_TYPELESS", bc(BC1, VariantTypeless)},
	DXGIBC1UNorm:               {"BC1_UNORM", bc(BC1, VariantUNorm)},
	DXGIBC1UNormSRGB:           {"BC1_UNORM_SRGB", bc(BC1, VariantUNormSRGB)},
	DXGIBC2Typeless:            {"BC2_TYPELESS", bc(BC2, VariantTypeless)},
	DXGIBC2UNorm:               {"BC2_UNORM", bc(BC2, VariantUNorm)},
	DXGIBC2UNormSRGB:           {"BC2_UNORM_SRGB", bc(BC2, VariantUNormSRGB)},
	DXGIBC3Typeless:            {"BC3_TYPELESS", bc(BC3, VariantTypeless)},
	DXGIBC3UNorm:               {"BC3_UNORM", bc(BC3, VariantUNorm)},
	DXGIBC3UNormSRGB:           {"BC3_UNORM_SRGB", bc(BC3, VariantUNormSRGB)},
	DXGIBC4Typeless:            {"BC4_TYPELESS", bc(BC4, VariantTypeless)},
	DXGIBC4UNorm:               {"BC4_UNORM", bc(BC4, VariantUNorm)},
	DXGIBC4SNorm:               {"BC4_SNORM", bc(BC4, VariantSNorm)},
	DXGIBC5Typeless:            {"BC5_TYPELESS", bc(BC5, VariantTypeless)},
	DXGIBC5UNorm:               {"BC5_UNORM", bc(BC5, VariantUNorm)},
	DXGIBC5SNorm:               {"BC5_SNORM", bc(BC5, VariantSNorm)},
	DXGIB5G6R5UNorm:            {"B5G6R5_UNORM", un(ReprUNorm, BGR(5, 6, 5))},
	DXGIB5G5R5A1UNorm:          {"B5G5R5A1_UNORM", un(ReprUNorm, BGRA(5, 5, 5, 1))},
	DXGIB8G8R8A8UNorm:          {"B8G8R8A8_UNORM", un(ReprUNorm, BGRA(8, 8, 8, 8))},
	DXGIB8G8R8X8UNorm:          {"B8G8R8X8_UNORM", un(ReprUNorm, BGRX(8, 8, 8, 8))},
	DXGIR10G10B10XRBiasA2UNorm: {"R10G10B10_XR_BIAS_A2_UNORM", sp(R10G10B10XRBiasA2UNorm)},
	DXGIB8G8R8A8Typeless:       {"B8G8R8A8_TYPELESS", un(ReprTypeless, BGRA(8, 8, 8, 8))},
	DXGIB8G8R8A8UNormSRGB:      {"B8G8R8A8_UNORM_SRGB", un(ReprUNormSRGB, BGRA(8, 8, 8, 8))},
	DXGIB8G8R8X8Typeless:       {"B8G8R8X8_TYPELESS", un(ReprTypeless, BGRX(8, 8, 8, 8))},
	DXGIB8G8R8X8UNormSRGB:      {"B8G8R8X8_UNORM_SRGB", un(ReprUNormSRGB, BGRX(8, 8, 8, 8))},
	DXGIBC6HTypeless:           {"BC6H_TYPELESS", bc(BC6H, VariantTypeless)},
	DXGIBC6HUF16:               {"BC6H_UF16", bc(BC6H, VariantUF16)},
	DXGIBC6HSF16:               {"BC6H_SF16", bc(BC6H, VariantSF16)},
	DXGIBC7Typeless:            {"BC7_TYPELESS", bc(BC7, VariantTypeless)},
	DXGIBC7UNorm:               {"BC7_UNORM", bc(BC7, VariantUNorm)},
	DXGIBC7UNormSRGB:           {"BC7_UNORM_SRGB", bc(BC7, VariantUNormSRGB)},
	DXGIAYUV:                   {"AYUV", bc(AYUV, VariantNone)},
	DXGIY410:                   {"Y410", bc(Y410, VariantNone)},
	DXGIY416:                   {"Y416", bc(Y416, VariantNone)},
	DXGINV12:                   {"NV12", bc(NV12, VariantNone)},
	DXGIP010:                   {"P010", bc(P010, VariantNone)},
	DXGIP016:                   {"P016", bc(P016, VariantNone)},
	DXGIOpaque420:              {"420_OPAQUE", bc(Opaque420, VariantNone)},
	DXGIYUY2:                   {"YUY2", bc(YUY2, VariantNone)},
	DXGIY210:                   {"Y210", bc(Y210, VariantNone)},
	DXGIY216:                   {"Y216", bc(Y216, VariantNone)},
	DXGINV11:                   {"NV11", bc(NV11, VariantNone)},
	DXGIAI44:                   {"AI44", bc(AI44, VariantNone)},
	DXGIIA44:                   {"IA44", bc(IA44, VariantNone)},
	DXGIP8:                     {"P8", sp(P8)},
	DXGIA8P8:                   {"A8P8", sp(A8P8)},
	DXGIB4G4R4A4UNorm:          {"B4G4R4A4_UNORM", un(ReprUNorm, BGRA(4, 4, 4, 4))},
	DXGIP208:                   {"P208", bc(P208, VariantNone)},
	DXGIV208:                   {"V208", bc(V208, VariantNone)},
	DXGIV408:                   {"V408", bc(V408, VariantNone)},
}

// Valid reports whether d is one of the known format ids.
func (d DXGI) Valid() bool {
	_, ok := dxgiFormats[d]
	return ok
}

func (d DXGI) String() string {
	if e, ok := dxgiFormats[d]; ok {
		return e.name
	}
	return fmt.Sprintf("DXGI(%d)", uint32(d))
}

// Texture returns the texture format that d identifies. Invalid ids
// yield Unknown carrying the raw value.
func (d DXGI) Texture() Texture {
	if e, ok := dxgiFormats[d]; ok {
		return e.texture
	}
	return Unknown(d)
}

func un(r Repr, c Channels) Texture { return Uncompressed{Repr: r, Channels: c} }

func sp(s Special) Texture { return Uncompressed{Repr: ReprSpecial, Special: s} }

func bc(s Scheme, v Variant) Texture { return Compressed{Scheme: s, Variant: v} }
