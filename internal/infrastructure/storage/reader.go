package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"dungeon-core/internal/core/types"
	"dungeon-core/internal/domain"
)

// ErrInvalidMagic - файл не является снимком памяти.
var ErrInvalidMagic = errors.New("invalid magic")

func (s *SnapshotService) Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(bufio.NewReader(f))
}

func readBinary(r io.Reader) (*Snapshot, error) {
	// 1. Заголовок целиком
	var header SnapshotFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	snap := &Snapshot{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Depth:     int(header.Depth),
		Width:     int(header.Width),
		Height:    int(header.Height),
		Cells:     make([]CellRecord, 0, header.CellCount),
	}

	// 2. Клетки
	for i := 0; i < int(header.CellCount); i++ {
		var ch CellHeader
		if err := binary.Read(r, binary.LittleEndian, &ch); err != nil {
			return nil, fmt.Errorf("failed to read cell %d: %w", i, err)
		}

		cell := CellRecord{
			Pos:    domain.Point{X: int(ch.X), Y: int(ch.Y)},
			Pieces: make([]PieceRecord, ch.PieceCount),
		}
		for j := range cell.Pieces {
			p, err := readPiece(r)
			if err != nil {
				return nil, fmt.Errorf("cell %v piece %d: %w", cell.Pos, j, err)
			}
			cell.Pieces[j] = p
		}
		snap.Cells = append(snap.Cells, cell)
	}

	return snap, nil
}

func readPiece(r io.Reader) (PieceRecord, error) {
	var ph PieceHeader
	if err := binary.Read(r, binary.LittleEndian, &ph); err != nil {
		return PieceRecord{}, err
	}

	cat := domain.Category(ph.Category)
	if !cat.IsValid() {
		return PieceRecord{}, fmt.Errorf("unknown category %d", ph.Category)
	}

	name := make([]byte, ph.NameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return PieceRecord{}, err
	}
	text := make([]byte, ph.TextLen)
	if _, err := io.ReadFull(r, text); err != nil {
		return PieceRecord{}, err
	}

	return PieceRecord{
		Category: cat,
		Glyph:    types.Glyph{Symbol: ph.Symbol, Fg: types.Color(ph.Fg), Bg: types.Color(ph.Bg)},
		Name:     string(name),
		Text:     string(text),
	}, nil
}
