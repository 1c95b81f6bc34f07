package osm

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
)

// Format selects the wire format of an OSM stream. FormatAuto sniffs the
// first bytes and picks XML (optionally gzip/bzip2-wrapped) or PBF.
type Format int

const (
	FormatAuto Format = iota
	FormatXML
	FormatPBF
)

// ErrLoadingFailed is the single undifferentiated ingest failure signal.
// Whatever went wrong — I/O error, decompression failure, malformed
// XML/PBF, an interrupted stream — is reported through this sentinel,
// with the underlying error's text appended to the wrapped error. Package
// compile also logs scan failures to the logging sink at ERROR level.
var ErrLoadingFailed = errors.New("osm: loading failed")

// Scanner yields OSM elements one at a time, nodes first, then ways, then
// relations, matching OSM's canonical file ordering. Element returns one
// of *OsmNode, *OsmWay, *OsmRelation, or nil for an object kind the
// compiler has no use for — never a paulmach/osm type directly; that
// library's richer object model stays confined to this package.
type Scanner interface {
	Scan() bool
	Element() any
	Err() error
	Close() error
}

// NewScanner wraps r as a Scanner of the given format. FormatAuto peeks at
// the first few bytes: gzip magic (\x1f\x8b) or bzip2 magic (BZh) implies
// a compressed XML document; a leading '<' implies uncompressed XML; a
// 4-byte blob-header length prefix followed by the "OSMHeader" blob type
// implies PBF; anything else falls back to uncompressed XML.
func NewScanner(ctx context.Context, r io.Reader, format Format) (Scanner, error) {
	switch format {
	case FormatXML:
		return &xmlScanner{s: osmxml.New(ctx, r)}, nil
	case FormatPBF:
		return &pbfScanner{s: osmpbf.New(ctx, r, runtime.GOMAXPROCS(0))}, nil
	default:
		return sniffAndOpen(ctx, r)
	}
}

func sniffAndOpen(ctx context.Context, r io.Reader) (Scanner, error) {
	br := bufio.NewReaderSize(r, 4096)
	magic, err := br.Peek(15)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: peeking magic bytes: %v", ErrLoadingFailed, err)
	}

	switch {
	case len(magic) >= 2 && magic[0] == 0x1f && magic[1] == 0x8b:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%w: opening gzip stream: %v", ErrLoadingFailed, err)
		}
		return &xmlScanner{s: osmxml.New(ctx, gz), closer: gz}, nil

	case len(magic) >= 3 && magic[0] == 'B' && magic[1] == 'Z' && magic[2] == 'h':
		return &xmlScanner{s: osmxml.New(ctx, bzip2.NewReader(br))}, nil

	case len(magic) >= 1 && magic[0] == '<':
		return &xmlScanner{s: osmxml.New(ctx, br)}, nil

	case len(magic) >= 15 && magic[4] == 0x0a && magic[5] == 0x09 && string(magic[6:15]) == "OSMHeader":
		return &pbfScanner{s: osmpbf.New(ctx, br, runtime.GOMAXPROCS(0))}, nil

	default:
		return &xmlScanner{s: osmxml.New(ctx, br)}, nil
	}
}

type xmlScanner struct {
	s      *osmxml.Scanner
	closer io.Closer
}

func (x *xmlScanner) Scan() bool   { return x.s.Scan() }
func (x *xmlScanner) Element() any { return convert(x.s.Object()) }
func (x *xmlScanner) Err() error   { return x.s.Err() }
func (x *xmlScanner) Close() error {
	err := x.s.Close()
	if x.closer != nil {
		if cerr := x.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

type pbfScanner struct {
	s *osmpbf.Scanner
}

func (p *pbfScanner) Scan() bool   { return p.s.Scan() }
func (p *pbfScanner) Element() any { return convert(p.s.Object()) }
func (p *pbfScanner) Err() error   { return p.s.Err() }
func (p *pbfScanner) Close() error { return p.s.Close() }
