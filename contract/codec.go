package contract

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"vote_dao/sdk"
)

// Record blobs use a compact deterministic binary layout: one kind byte, then
// big-endian fixed-width numbers and varint-length strings. Deterministic
// bytes keep record hashes and storage diffs stable across hosts.

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter(kind byte) *binWriter {
	w := &binWriter{}
	w.buf.WriteByte(kind)
	return w
}

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *binWriter) writeByte(v uint8) {
	w.buf.WriteByte(v)
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *binWriter) writeUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep string lengths compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(a.String())
}

type binReader struct {
	r *bytes.Reader
}

// newReader validates the kind byte up front so decode paths fail fast on
// blobs written for a different record.
func newReader(data []byte, kind byte) (*binReader, error) {
	r := bytes.NewReader(data)
	got, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if got != kind {
		return nil, fmt.Errorf("record kind 0x%02x, expected 0x%02x", got, kind)
	}
	return &binReader{r: r}, nil
}

func (r *binReader) readBool() (bool, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (r *binReader) readByte() (uint8, error) {
	return r.r.ReadByte()
}

func (r *binReader) readUint64() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func (r *binReader) readUint16() (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	return int64(v), err
}

func (r *binReader) readVarUint() (uint64, error) {
	return binary.ReadUvarint(r.r)
}

func (r *binReader) readString() (string, error) {
	n, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if n > uint64(r.r.Len()) {
		return "", errors.New("string length exceeds blob")
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	return sdk.Address(s), err
}

// -----------------------------------------------------------------------------
// Record codecs
// -----------------------------------------------------------------------------

func EncodeTreasuryConfig(cfg *TreasuryConfig) []byte {
	w := newWriter(recTreasuryConfig)
	w.writeAddress(cfg.Authority)
	w.writeAddress(cfg.XMint)
	w.writeAddress(cfg.TreasuryTokenAccount)
	w.writeUint64(cfg.SolPrice)
	w.writeUint64(cfg.TokensPerPurchase)
	return w.bytes()
}

func DecodeTreasuryConfig(data []byte) (*TreasuryConfig, error) {
	r, err := newReader(data, recTreasuryConfig)
	if err != nil {
		return nil, err
	}
	cfg := &TreasuryConfig{}
	if cfg.Authority, err = r.readAddress(); err != nil {
		return nil, err
	}
	if cfg.XMint, err = r.readAddress(); err != nil {
		return nil, err
	}
	if cfg.TreasuryTokenAccount, err = r.readAddress(); err != nil {
		return nil, err
	}
	if cfg.SolPrice, err = r.readUint64(); err != nil {
		return nil, err
	}
	if cfg.TokensPerPurchase, err = r.readUint64(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func EncodeProposalCounter(c *ProposalCounter) []byte {
	w := newWriter(recProposalCounter)
	w.writeAddress(c.Authority)
	w.writeUint16(c.ProposalCount)
	return w.bytes()
}

func DecodeProposalCounter(data []byte) (*ProposalCounter, error) {
	r, err := newReader(data, recProposalCounter)
	if err != nil {
		return nil, err
	}
	c := &ProposalCounter{}
	if c.Authority, err = r.readAddress(); err != nil {
		return nil, err
	}
	if c.ProposalCount, err = r.readUint16(); err != nil {
		return nil, err
	}
	return c, nil
}

func EncodeProposal(p *Proposal) []byte {
	w := newWriter(recProposal)
	w.writeByte(p.ProposalID)
	w.writeUint64(p.NumberOfVotes)
	w.writeInt64(p.Deadline)
	w.writeString(p.ProposalInfo)
	w.writeAddress(p.Authority)
	return w.bytes()
}

func DecodeProposal(data []byte) (*Proposal, error) {
	r, err := newReader(data, recProposal)
	if err != nil {
		return nil, err
	}
	p := &Proposal{}
	if p.ProposalID, err = r.readByte(); err != nil {
		return nil, err
	}
	if p.NumberOfVotes, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Deadline, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.ProposalInfo, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Authority, err = r.readAddress(); err != nil {
		return nil, err
	}
	return p, nil
}

func EncodeVoter(v *Voter) []byte {
	w := newWriter(recVoter)
	w.writeAddress(v.VoterID)
	w.writeBool(v.Voted)
	w.writeByte(v.ProposalVoted)
	return w.bytes()
}

func DecodeVoter(data []byte) (*Voter, error) {
	r, err := newReader(data, recVoter)
	if err != nil {
		return nil, err
	}
	v := &Voter{}
	if v.VoterID, err = r.readAddress(); err != nil {
		return nil, err
	}
	if v.Voted, err = r.readBool(); err != nil {
		return nil, err
	}
	if v.ProposalVoted, err = r.readByte(); err != nil {
		return nil, err
	}
	return v, nil
}

func EncodeWinner(win *Winner) []byte {
	w := newWriter(recWinner)
	w.writeByte(win.WinningProposalID)
	w.writeUint64(win.WinningVotes)
	w.writeString(win.ProposalInfo)
	w.writeInt64(win.DeclaredAt)
	return w.bytes()
}

func DecodeWinner(data []byte) (*Winner, error) {
	r, err := newReader(data, recWinner)
	if err != nil {
		return nil, err
	}
	win := &Winner{}
	if win.WinningProposalID, err = r.readByte(); err != nil {
		return nil, err
	}
	if win.WinningVotes, err = r.readUint64(); err != nil {
		return nil, err
	}
	if win.ProposalInfo, err = r.readString(); err != nil {
		return nil, err
	}
	if win.DeclaredAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return win, nil
}
