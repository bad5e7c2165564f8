// Package format defines the enumerations shared by the wkb packages.
package format

import "strings"

type (
	GeometryType    uint32
	Ordinate        uint32
	ByteOrder       uint8
	PackingMode     uint8
	CompressionType uint8
)

const (
	Geometry           GeometryType = 0 // Geometry is the abstract base kind; it never appears on the wire.
	Point              GeometryType = 1 // Point is a single XY coordinate.
	LineString         GeometryType = 2 // LineString is a coordinate sequence.
	Polygon            GeometryType = 3 // Polygon is a shell ring followed by hole rings.
	MultiPoint         GeometryType = 4 // MultiPoint is a collection of points.
	MultiLineString    GeometryType = 5 // MultiLineString is a collection of line strings.
	MultiPolygon       GeometryType = 6 // MultiPolygon is a collection of polygons.
	GeometryCollection GeometryType = 7 // GeometryCollection is a heterogeneous collection.
)

const (
	XY   Ordinate = 0 // XY is plain two dimensional coordinates.
	XYZ  Ordinate = 1 // XYZ carries an elevation ordinate.
	XYM  Ordinate = 2 // XYM carries a measure ordinate.
	XYZM Ordinate = 3 // XYZM carries both elevation and measure.
)

const (
	BigEndian    ByteOrder = 0 // BigEndian is the XDR byte order marker.
	LittleEndian ByteOrder = 1 // LittleEndian is the NDR byte order marker.
)

const (
	PackingAOS PackingMode = 0x0 // PackingAOS stores coordinates as interleaved X,Y pairs.
	PackingSOA PackingMode = 0x1 // PackingSOA stores all X values and all Y values in separate arrays.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (g GeometryType) String() string {
	switch g {
	case Geometry:
		return "Geometry"
	case Point:
		return "Point"
	case LineString:
		return "LineString"
	case Polygon:
		return "Polygon"
	case MultiPoint:
		return "MultiPoint"
	case MultiLineString:
		return "MultiLineString"
	case MultiPolygon:
		return "MultiPolygon"
	case GeometryCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// IsValid reports whether g is one of the seven concrete kinds.
func (g GeometryType) IsValid() bool {
	return g >= Point && g <= GeometryCollection
}

// IsCollection reports whether g is encoded as a count of tagged children.
func (g GeometryType) IsCollection() bool {
	return g >= MultiPoint && g <= GeometryCollection
}

// ElementType returns the child kind a homogeneous collection must hold.
// It returns Geometry for GeometryCollection and for non-collection kinds.
func (g GeometryType) ElementType() GeometryType {
	switch g {
	case MultiPoint:
		return Point
	case MultiLineString:
		return LineString
	case MultiPolygon:
		return Polygon
	default:
		return Geometry
	}
}

func (o Ordinate) String() string {
	switch o {
	case XY:
		return "XY"
	case XYZ:
		return "XYZ"
	case XYM:
		return "XYM"
	case XYZM:
		return "XYZM"
	default:
		return "Unknown"
	}
}

func (b ByteOrder) String() string {
	switch b {
	case BigEndian:
		return "BigEndian"
	case LittleEndian:
		return "LittleEndian"
	default:
		return "Unknown"
	}
}

// IsValid reports whether b is a legal WKB byte order marker.
func (b ByteOrder) IsValid() bool {
	return b == BigEndian || b == LittleEndian
}

// Swap returns the opposite byte order marker.
func (b ByteOrder) Swap() ByteOrder {
	return b ^ 1
}

func (p PackingMode) String() string {
	switch p {
	case PackingAOS:
		return "AOS"
	case PackingSOA:
		return "SOA"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-insensitive name to a CompressionType.
func ParseCompression(name string) (CompressionType, bool) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

// ParsePackingMode maps a case-insensitive name to a PackingMode.
func ParsePackingMode(name string) (PackingMode, bool) {
	switch strings.ToLower(name) {
	case "aos", "":
		return PackingAOS, true
	case "soa":
		return PackingSOA, true
	default:
		return 0, false
	}
}
