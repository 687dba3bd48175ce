// Package encoding provides the value codecs used to write category table entries.
//
// Every supported source type has a ValueCodec that appends one value to a byte slice
// and reads it back. Fixed-width values (integers, floats) are written with the byte
// order of an endian.EndianEngine, bools as a single 0x00/0x01 byte and strings as a
// uvarint byte length followed by the raw bytes, so empty strings and strings holding
// NUL bytes round-trip unchanged.
//
// Most users should use the blob package instead, which adds the header, checksum and
// compression around the encoded entries.
//
// # Usage
//
//	codec, err := encoding.CodecFor[string]()
//	if err != nil {
//	    return err
//	}
//
//	enc := encoding.NewValueEncoder(codec, endian.GetLittleEndianEngine())
//	defer enc.Finish()
//	enc.WriteSlice([]string{"red", "blue"})
//	payload := enc.Bytes()
//
//	values, err := encoding.NewValueDecoder(codec, engine).DecodeAll(payload, 2)
package encoding
