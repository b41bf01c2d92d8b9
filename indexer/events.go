// Package indexer replays the contract's event log into a queryable local
// store. Clients poll the read API instead of scanning chain storage.
package indexer

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the leading tag of an event line.
type Kind string

const (
	KindTreasuryInitialized Kind = "ti"
	KindTreasuryConfigured  Kind = "tc"
	KindTokensPurchased     Kind = "tp"
	KindSolWithdrawn        Kind = "tw"
	KindCounterInitialized  Kind = "ci"
	KindProposalCreated     Kind = "pc"
	KindProposalClosed      Kind = "px"
	KindVoterRegistered     Kind = "vr"
	KindVoterClosed         Kind = "vx"
	KindVoteCast            Kind = "v"
	KindWinnerDeclared      Kind = "w"
)

// knownKinds gates parsing so garbage lines are rejected instead of being
// indexed under a made-up tag.
var knownKinds = map[Kind]bool{
	KindTreasuryInitialized: true,
	KindTreasuryConfigured:  true,
	KindTokensPurchased:     true,
	KindSolWithdrawn:        true,
	KindCounterInitialized:  true,
	KindProposalCreated:     true,
	KindProposalClosed:      true,
	KindVoterRegistered:     true,
	KindVoterClosed:         true,
	KindVoteCast:            true,
	KindWinnerDeclared:      true,
}

// Event is one parsed pipe-delimited log line.
type Event struct {
	Kind   Kind
	Fields map[string]string
}

// ParseEvent splits a line like "v|id:0|by:wallet:bob|n:1|stake:50" into its
// kind and fields. Field values may themselves contain colons (addresses do),
// so only the first colon of each segment separates key from value.
func ParseEvent(line string) (Event, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Event{}, fmt.Errorf("empty event line")
	}
	parts := strings.Split(line, "|")
	kind := Kind(parts[0])
	if !knownKinds[kind] {
		return Event{}, fmt.Errorf("unknown event kind %q", parts[0])
	}
	ev := Event{Kind: kind, Fields: make(map[string]string, len(parts)-1)}
	for _, part := range parts[1:] {
		key, value, ok := strings.Cut(part, ":")
		if !ok || key == "" {
			return Event{}, fmt.Errorf("malformed event field %q in %q", part, line)
		}
		ev.Fields[key] = value
	}
	return ev, nil
}

// Uint64 reads a numeric field, with zero for missing or malformed values
// reported as an error.
func (e Event) Uint64(key string) (uint64, error) {
	raw, ok := e.Fields[key]
	if !ok {
		return 0, fmt.Errorf("event %s missing field %q", e.Kind, key)
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("event %s field %q: %w", e.Kind, key, err)
	}
	return v, nil
}

// Int64 reads a signed numeric field like a deadline or declared-at stamp.
func (e Event) Int64(key string) (int64, error) {
	raw, ok := e.Fields[key]
	if !ok {
		return 0, fmt.Errorf("event %s missing field %q", e.Kind, key)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("event %s field %q: %w", e.Kind, key, err)
	}
	return v, nil
}

// ProposalID reads the one-byte proposal id field.
func (e Event) ProposalID() (uint8, error) {
	v, err := e.Uint64("id")
	if err != nil {
		return 0, err
	}
	if v > 255 {
		return 0, fmt.Errorf("event %s proposal id %d out of range", e.Kind, v)
	}
	return uint8(v), nil
}

// Field reads a free-form field like a wallet address.
func (e Event) Field(key string) (string, error) {
	raw, ok := e.Fields[key]
	if !ok {
		return "", fmt.Errorf("event %s missing field %q", e.Kind, key)
	}
	return raw, nil
}
