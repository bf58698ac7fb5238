package services

import (
	"bufio"
	"bytes"
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/valuesort/internal/core/domain"
	"github.com/custodia-labs/valuesort/internal/core/ports/driven"
	"github.com/custodia-labs/valuesort/internal/core/ports/driving"
	"github.com/custodia-labs/valuesort/internal/logger"
)

// Ensure SnapshotService implements the interface.
var _ driving.SnapshotService = (*SnapshotService)(nil)

// Tabular snapshot column names.
const (
	columnLane        = "lane"
	columnRank        = "rank"
	columnName        = "name"
	columnDescription = "description"
)

// csvHeader is the header row of every exported tabular snapshot.
const csvHeader = columnLane + "," + columnRank + "," + columnName + "," + columnDescription

// exportPrefix starts every snapshot file name.
const exportPrefix = "values_export_"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SnapshotService encodes the board and decodes tabular snapshots.
// It never writes to the board except through BoardService.Replace.
type SnapshotService struct {
	board  driving.BoardService
	writer driven.SnapshotWriter
	now    func() time.Time
}

// NewSnapshotService creates a snapshot service over board.
// writer may be nil, in which case Export fails.
func NewSnapshotService(board driving.BoardService, writer driven.SnapshotWriter) *SnapshotService {
	return &SnapshotService{
		board:  board,
		writer: writer,
		now:    time.Now,
	}
}

// Report renders the board as preview text.
func (s *SnapshotService) Report() string {
	b := s.board.Board()
	return EncodeReport(&b)
}

// CSV renders the board as tabular text.
func (s *SnapshotService) CSV() string {
	b := s.board.Board()
	return EncodeCSV(&b)
}

// Render renders the board in format.
func (s *SnapshotService) Render(format domain.SnapshotFormat) (string, error) {
	switch format {
	case domain.SnapshotText:
		return s.Report(), nil
	case domain.SnapshotCSV:
		return s.CSV(), nil
	default:
		return "", fmt.Errorf("render %q: %w", format, domain.ErrUnsupportedFormat)
	}
}

// Decode parses tabular text into buckets.
func (s *SnapshotService) Decode(r io.Reader) (*domain.Buckets, error) {
	return DecodeCSV(r)
}

// Import decodes tabular text and hands the result to the board as a
// wholesale replacement.
func (s *SnapshotService) Import(r io.Reader) (*domain.ImportResult, error) {
	buckets, err := DecodeCSV(r)
	if err != nil {
		return nil, err
	}

	s.board.Replace(buckets.Lanes)

	result := &domain.ImportResult{
		Cards:        buckets.Total(),
		PerLane:      make(map[domain.LaneID]int, domain.NumLanes),
		UnknownLanes: slices.Clone(buckets.UnknownOrder),
		Skipped:      buckets.UnknownTotal(),
	}
	for _, id := range domain.LaneOrder() {
		result.PerLane[id] = len(buckets.Lanes[id])
	}

	logger.Info("imported %d cards", result.Cards)
	if len(result.UnknownLanes) > 0 {
		logger.Warn("import skipped %d cards in unknown lanes: %s",
			result.Skipped, strings.Join(result.UnknownLanes, ", "))
	}
	return result, nil
}

// Export writes the board in format to a dated snapshot file.
func (s *SnapshotService) Export(format domain.SnapshotFormat) (string, error) {
	if s.writer == nil {
		return "", errors.New("snapshot writer not configured")
	}
	text, err := s.Render(format)
	if err != nil {
		return "", err
	}

	name := SnapshotFileName(s.now(), format)
	path, err := s.writer.Write(name, []byte(text))
	if err != nil {
		return "", fmt.Errorf("write snapshot %s: %w", name, err)
	}
	logger.Info("exported %s snapshot to %s", format, path)
	return path, nil
}

// SnapshotFileName returns the dated file name for a snapshot taken at t,
// e.g. values_export_20240131.csv.
func SnapshotFileName(t time.Time, format domain.SnapshotFormat) string {
	return exportPrefix + t.Format("20060102") + "." + format.String()
}

// EncodeReport renders b as preview text: per lane an uppercase heading,
// one "<rank>. <name> — <desc>" line per card, then a blank line.
func EncodeReport(b *domain.Board) string {
	var lines []string
	for _, id := range domain.LaneOrder() {
		lines = append(lines, strings.ToUpper(id.Title()))
		for i, card := range b[id] {
			lines = append(lines, fmt.Sprintf("%d. %s — %s", i+1, card.Name, card.Desc))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// EncodeCSV renders b as tabular text. Rows follow lane order then lane
// position, and every data field is quoted.
func EncodeCSV(b *domain.Board) string {
	rows := []string{csvHeader}
	for _, id := range domain.LaneOrder() {
		for i, card := range b[id] {
			rows = append(rows, strings.Join([]string{
				quoteField(id.String()),
				quoteField(strconv.Itoa(i + 1)),
				quoteField(card.Name),
				quoteField(card.Desc),
			}, ","))
		}
	}
	return strings.Join(rows, "\n")
}

// quoteField wraps s in double quotes, doubling any quotes inside it.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// rankedCard is a decoded card awaiting its rank sort.
type rankedCard struct {
	rank int
	card domain.Card
}

// DecodeCSV parses tabular text into buckets.
//
// The first non-blank row is the header; later rows are read by column
// name. Rows for lanes outside the catalog are kept in Buckets.Unknown.
// A missing or non-numeric rank sorts last. Each lane is stably sorted by
// rank, so equal ranks keep file order.
//
// Whitespace before a field is ignored, so a quoted field may follow a
// padded comma. A stray quote fails the whole decode with
// domain.ErrMalformedSnapshot and the line it was found on.
func DecodeCSV(r io.Reader) (*domain.Buckets, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var header map[string]int
	staged := make(map[domain.LaneID][]rankedCard, domain.NumLanes)
	unknown := make(map[string][]rankedCard)
	var unknownOrder []string

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("decode snapshot: %w: %w", domain.ErrMalformedSnapshot, parseErr)
		}
		if err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
		if isBlankRecord(record) {
			continue
		}
		if header == nil {
			header = headerIndex(record)
			continue
		}

		field := func(name string) string {
			i, ok := header[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		laneID := strings.TrimSpace(field(columnLane))
		entry := rankedCard{
			rank: parseRank(field(columnRank)),
			card: domain.Card{
				Name: field(columnName),
				Desc: field(columnDescription),
			},
		}

		if id, ok := domain.ParseLaneID(laneID); ok {
			staged[id] = append(staged[id], entry)
			continue
		}
		if _, seen := unknown[laneID]; !seen {
			unknownOrder = append(unknownOrder, laneID)
		}
		unknown[laneID] = append(unknown[laneID], entry)
	}

	buckets := domain.NewBuckets()
	for id, entries := range staged {
		buckets.Lanes[id] = sortByRank(entries)
	}
	for id, entries := range unknown {
		buckets.Unknown[id] = sortByRank(entries)
	}
	buckets.UnknownOrder = unknownOrder

	logger.Debug("decoded %d cards, %d in unknown lanes", buckets.Total(), buckets.UnknownTotal())
	return buckets, nil
}

func headerIndex(record []string) map[string]int {
	index := make(map[string]int, len(record))
	for i, name := range record {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	return index
}

// parseRank keeps every real rank below domain.LastRank. Out of range
// numbers saturate rather than counting as missing.
func parseRank(s string) int {
	rank, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return domain.LastRank
	}
	return min(rank, domain.LastRank-1)
}

func sortByRank(entries []rankedCard) []domain.Card {
	slices.SortStableFunc(entries, func(a, b rankedCard) int {
		return cmp.Compare(a.rank, b.rank)
	})
	out := make([]domain.Card, len(entries))
	for i, e := range entries {
		out[i] = e.card
	}
	return out
}

// isBlankRecord reports whether a record came from a whitespace-only line.
func isBlankRecord(record []string) bool {
	return len(record) == 1 && strings.TrimSpace(record[0]) == ""
}

// skipBOM drops a leading UTF-8 byte order mark, as written by spreadsheets.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
