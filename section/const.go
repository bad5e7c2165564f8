package section

const (
	// WKB type code layout
	ReservedFlagsMask = 0xE0000000 // Z, M and SRID presence flags of extended WKB, must be zero
	KindDivisor       = 1000       // kind = code % 1000, ordinate = code / 1000
	MaxOrdinate       = 3          // XYZM, the largest ordinate selector defined by ISO WKB
)

// offsets and sizes of WKB structures
const (
	ByteOrderOffset   = 0                           // byte offset of the byte order marker
	TypeCodeOffset    = 1                           // byte offset of the packed uint32 type code
	HeaderSize        = 5                           // order byte + type code
	CountSize         = 4                           // point, ring or child count
	CountOffset       = HeaderSize                  // byte offset of the count following the header
	CountedHeaderSize = HeaderSize + CountSize      // header of a line string, polygon or collection
	OrdinateSize      = 8                           // one IEEE-754 double
	CoordinateSize    = 2 * OrdinateSize            // interleaved X,Y pair
	PointSize         = HeaderSize + CoordinateSize // fixed size of an encoded point
	PointXOffset      = HeaderSize                  // byte offset of a point's X ordinate
	PointYOffset      = HeaderSize + OrdinateSize   // byte offset of a point's Y ordinate
)

// geometry set container layout
const (
	SetHeaderSize    = 32     // fixed geometry set header size in bytes
	SetIndexEntry    = 4      // one uint32 payload offset per record
	SetIndexOffset   = SetHeaderSize
	SetMaxPayload    = 1<<32 - 1
	DedupMask        = 0x0001 // Mask for deduplication bit (bit 0)
	SetReservedMask  = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)
	MagicGeomSetV1   = 0x4B50 // version 1 magic number of the geometry set format
	MaxSetGeometries = (SetMaxPayload - SetHeaderSize) / SetIndexEntry // largest count whose index still fits uint32 offsets
)
