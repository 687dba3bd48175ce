package blob

import (
	"fmt"
	"strconv"

	"github.com/arloliu/catenc/category"
	"github.com/arloliu/catenc/encoding"
	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/format"
)

// Info describes a blob without binding it to a Go value type.
type Info struct {
	Version      uint8                  `json:"version"`
	SourceType   format.SourceType      `json:"source_type"`
	Compression  format.CompressionType `json:"compression"`
	UnseenPolicy format.UnseenPolicy    `json:"unseen_policy"`
	BigEndian    bool                   `json:"big_endian"`
	Count        int                    `json:"count"`
	PayloadSize  int                    `json:"payload_size"`
	StoredSize   int                    `json:"stored_size"`
	Checksum     uint64                 `json:"checksum"`
	// Categories holds the category values in index order, rendered as strings.
	Categories []string `json:"categories"`
}

// Inspect fully decodes and validates a blob of any source type.
func Inspect(data []byte) (Info, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return Info{}, err
	}

	info := Info{
		Version:      header.Flag.Version,
		SourceType:   header.Flag.GetSourceType(),
		Compression:  header.Flag.GetCompression(),
		UnseenPolicy: header.Flag.GetUnseenPolicy(),
		BigEndian:    header.Flag.IsBigEndian(),
		Count:        int(header.Count),
		PayloadSize:  int(header.PayloadSize),
		StoredSize:   int(header.StoredSize),
		Checksum:     header.Checksum,
	}

	switch info.SourceType {
	case format.SourceInt8:
		info.Categories, err = render(data, func(v int8) string { return strconv.FormatInt(int64(v), 10) })
	case format.SourceInt16:
		info.Categories, err = render(data, func(v int16) string { return strconv.FormatInt(int64(v), 10) })
	case format.SourceInt32:
		info.Categories, err = render(data, func(v int32) string { return strconv.FormatInt(int64(v), 10) })
	case format.SourceInt64:
		info.Categories, err = render(data, func(v int64) string { return strconv.FormatInt(v, 10) })
	case format.SourceUint8:
		info.Categories, err = render(data, func(v uint8) string { return strconv.FormatUint(uint64(v), 10) })
	case format.SourceUint16:
		info.Categories, err = render(data, func(v uint16) string { return strconv.FormatUint(uint64(v), 10) })
	case format.SourceUint32:
		info.Categories, err = render(data, func(v uint32) string { return strconv.FormatUint(uint64(v), 10) })
	case format.SourceUint64:
		info.Categories, err = render(data, func(v uint64) string { return strconv.FormatUint(v, 10) })
	case format.SourceFloat32:
		info.Categories, err = render(data, func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) })
	case format.SourceFloat64:
		info.Categories, err = render(data, func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) })
	case format.SourceBool:
		info.Categories, err = render(data, strconv.FormatBool)
	case format.SourceString:
		info.Categories, err = render(data, func(v string) string { return v })
	default:
		err = fmt.Errorf("%w: %s", errs.ErrUnsupportedSourceType, info.SourceType)
	}
	if err != nil {
		return Info{}, err
	}

	return info, nil
}

func render[T category.Value](data []byte, str func(T) string) ([]string, error) {
	header, payload, err := readPayload(data)
	if err != nil {
		return nil, err
	}

	codec, err := encoding.CodecFor[T]()
	if err != nil {
		return nil, err
	}

	values, err := encoding.NewValueDecoder(codec, header.GetEndianEngine()).DecodeAll(payload, int(header.Count))
	if err != nil {
		return nil, err
	}

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = str(v)
	}

	return out, nil
}
