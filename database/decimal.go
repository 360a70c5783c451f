package database

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decimalCodec stores decimal.Decimal values as BSON Decimal128 so money
// survives the round trip exactly. The default struct codec would serialize
// the unexported fields away and read everything back as zero.
type decimalCodec struct{}

func (decimalCodec) EncodeValue(ec bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != decimalType {
		return bsoncodec.ValueEncoderError{
			Name:     "decimalCodec",
			Types:    []reflect.Type{decimalType},
			Received: val,
		}
	}
	dec := val.Interface().(decimal.Decimal)
	d128, err := primitive.ParseDecimal128(dec.String())
	if err != nil {
		return fmt.Errorf("decimal %q does not fit Decimal128: %w", dec, err)
	}
	return vw.WriteDecimal128(d128)
}

func (decimalCodec) DecodeValue(dc bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != decimalType {
		return bsoncodec.ValueDecoderError{
			Name:     "decimalCodec",
			Types:    []reflect.Type{decimalType},
			Received: val,
		}
	}

	var dec decimal.Decimal
	switch vr.Type() {
	case bsontype.Decimal128:
		d128, err := vr.ReadDecimal128()
		if err != nil {
			return err
		}
		parsed, err := decimal.NewFromString(d128.String())
		if err != nil {
			return err
		}
		dec = parsed
	case bsontype.String:
		// Documents written by migration scripts store amounts as strings.
		s, err := vr.ReadString()
		if err != nil {
			return err
		}
		parsed, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		dec = parsed
	case bsontype.Double:
		f, err := vr.ReadDouble()
		if err != nil {
			return err
		}
		dec = decimal.NewFromFloat(f)
	case bsontype.Int32:
		i, err := vr.ReadInt32()
		if err != nil {
			return err
		}
		dec = decimal.NewFromInt32(i)
	case bsontype.Int64:
		i, err := vr.ReadInt64()
		if err != nil {
			return err
		}
		dec = decimal.NewFromInt(i)
	case bsontype.Null:
		if err := vr.ReadNull(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot decode BSON %s into decimal.Decimal", vr.Type())
	}

	val.Set(reflect.ValueOf(dec))
	return nil
}

// Registry returns the BSON registry all Mongo traffic goes through.
func Registry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(decimalType, decimalCodec{})
	reg.RegisterTypeDecoder(decimalType, decimalCodec{})
	return reg
}
