// Package cursor provides a panic-free, forward-only cursor over in-memory
// bytes, plus a typed decode layer on top of it. It is meant for wire- and
// file-format parsers that must never panic on malformed or truncated
// input.
//
// The [Reader] owns a byte buffer and a read position. All of its reads
// are bounds-checked and atomic: a read either advances the position by
// exactly the requested amount and returns exactly the requested data, or
// fails with [ErrEndOfInput] and leaves the position where it was. Slicing
// reads ([Reader.ReadBytes], [Reader.Subreader], [Reader.ReadToEnd]) are
// zero-copy views into the same storage.
//
// The generic functions [Decode], [DecodeLE], [DecodeBE] and [DecodeNE]
// read fixed-width integers in an explicit or the platform's byte order,
// deriving the width from the type parameter. The named methods
// [Reader.ReadUint16], [Reader.ReadInt64] and friends are big-endian
// shorthands for the same reads.
//
// [ReaderMayPanic] is the one escape hatch: it exposes the [Buf]
// consume-bytes capability needed by buffer-generic decoding code, at the
// cost of panicking on underflow. [Source] goes the other way up the
// stack and lets [github.com/go-gum/unravel] unmarshal whole structs from
// a Reader.
package cursor
