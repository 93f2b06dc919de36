package usda

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/klauspost/compress/gzip"

	"github.com/nutrikit/trophe/pkg/food"
	"github.com/nutrikit/trophe/pkg/serializer"
)

// SourceEmbedded names the sample dataset compiled into the binary.
const SourceEmbedded = "embedded"

// Source scheme prefixes.
const (
	schemeHTTP  = "http://"
	schemeHTTPS = "https://"
	schemeS3    = "s3://"
)

// DefaultMaxSize caps dataset downloads at 64 MB. The full ABBREV database
// is under 3 MB; anything larger is the wrong file.
const DefaultMaxSize = 64 << 20

// S3API is the slice of the S3 client the loader needs. Satisfied by
// *s3.Client; tests substitute a fake.
type S3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithParser sets the line parser. Default is NewParser().
func WithParser(p *Parser) LoaderOption {
	return func(l *Loader) {
		l.parser = p
	}
}

// WithHTTPReader sets the reader used for http and https sources.
func WithHTTPReader(r *serializer.HttpReader) LoaderOption {
	return func(l *Loader) {
		l.httpReader = r
	}
}

// WithS3Client sets the client used for s3 sources. Without this option a
// client is built from the ambient AWS configuration on first use.
func WithS3Client(client S3API) LoaderOption {
	return func(l *Loader) {
		l.s3Client = client
	}
}

// WithMaxSize sets the maximum dataset size in bytes. Default is
// DefaultMaxSize.
func WithMaxSize(size int64) LoaderOption {
	return func(l *Loader) {
		l.maxSize = size
	}
}

// Loader loads food records from a dataset source. The zero options cover
// the common case; see the Option functions for customization.
type Loader struct {
	parser     *Parser
	httpReader *serializer.HttpReader
	s3Client   S3API
	maxSize    int64
}

// NewLoader creates a Loader with the provided options.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		parser:  NewParser(),
		maxSize: DefaultMaxSize,
	}

	// Apply options
	for _, opt := range opts {
		opt(l)
	}

	if l.httpReader == nil {
		l.httpReader = serializer.NewHttpReader()
	}
	return l
}

// Load fetches and parses the dataset named by source. An empty source
// loads the embedded sample. Every returned record satisfies the
// food.Record invariants; unusable records are skipped, a structurally
// broken file is an error.
func (l *Loader) Load(ctx context.Context, source string) (food.List, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scheme := sourceScheme(source)
	start := time.Now()

	data, err := l.fetch(ctx, source, scheme)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset %q: %w", source, err)
	}

	if int64(len(data)) > l.maxSize {
		return nil, fmt.Errorf("dataset %q exceeds maximum size of %d bytes", source, l.maxSize)
	}

	if isGzip(source, data) {
		if data, err = gunzip(data, l.maxSize); err != nil {
			return nil, fmt.Errorf("failed to decompress dataset %q: %w", source, err)
		}
	}

	records, skipped, err := l.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %q: %w", source, err)
	}

	loadDuration.WithLabelValues(scheme).Observe(time.Since(start).Seconds())
	recordsLoaded.WithLabelValues(scheme).Add(float64(len(records)))
	recordsSkipped.WithLabelValues(scheme).Add(float64(skipped))

	slog.Debug("dataset loaded",
		"source", source,
		"scheme", scheme,
		"records", len(records),
		"skipped", skipped,
		"duration", time.Since(start).String(),
	)

	return records, nil
}

func (l *Loader) fetch(ctx context.Context, source, scheme string) ([]byte, error) {
	switch scheme {
	case SourceEmbedded:
		return sampleData()
	case "http", "https":
		return l.httpReader.ReadWithContext(ctx, source)
	case "s3":
		return l.fetchS3(ctx, source)
	default:
		return os.ReadFile(source)
	}
}

func (l *Loader) fetchS3(ctx context.Context, source string) ([]byte, error) {
	bucket, key, err := splitS3URI(source)
	if err != nil {
		return nil, err
	}

	client := l.s3Client
	if client == nil {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		client = s3.NewFromConfig(cfg)
		l.s3Client = client
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	return io.ReadAll(io.LimitReader(out.Body, l.maxSize+1))
}

// splitS3URI splits s3://bucket/key into its parts.
func splitS3URI(source string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(source, schemeS3)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 uri %q, want s3://bucket/key", source)
	}
	return bucket, key, nil
}

// sourceScheme classifies a source for routing and metric labels.
func sourceScheme(source string) string {
	switch {
	case source == "" || source == SourceEmbedded:
		return SourceEmbedded
	case strings.HasPrefix(source, schemeHTTPS):
		return "https"
	case strings.HasPrefix(source, schemeHTTP):
		return "http"
	case strings.HasPrefix(source, schemeS3):
		return "s3"
	default:
		return "file"
	}
}

var gzipMagic = []byte{0x1f, 0x8b}

// isGzip reports whether the payload should be decompressed, either by
// extension or by magic number. Remote servers sometimes serve .gz files
// without the extension in the URI.
func isGzip(source string, data []byte) bool {
	if strings.HasSuffix(strings.ToLower(source), ".gz") {
		return true
	}
	return bytes.HasPrefix(data, gzipMagic)
}

func gunzip(data []byte, maxSize int64) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > maxSize {
		return nil, fmt.Errorf("decompressed dataset exceeds maximum size of %d bytes", maxSize)
	}
	return out, nil
}
