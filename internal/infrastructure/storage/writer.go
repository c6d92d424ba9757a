package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

const (
	MagicHeader string = `DCMM` // 4 байта
	Version1    uint32 = 1
)

// SnapshotFileHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: тут нет слайсов и строк, только массивы и числа.
type SnapshotFileHeader struct {
	Magic     [4]byte // 4 байта
	Version   uint32  // 4 байта
	Seed      int64   // 8 байт
	Timestamp int64   // 8 байт
	Depth     int32   // 4 байта
	Width     uint16  // 2 байта
	Height    uint16  // 2 байта
	CellCount uint32  // 4 байта
}

// CellHeader - заголовок каждой клетки.
type CellHeader struct {
	X          uint16 // 2
	Y          uint16 // 2
	PieceCount uint8  // 1
}

// PieceHeader - заголовок каждого образа, за ним идут имя и описание.
type PieceHeader struct {
	Category uint8  // 1
	Symbol   int32  // 4
	Fg       uint32 // 4
	Bg       uint32 // 4
	NameLen  uint8  // 1
	TextLen  uint16 // 2
}

type SnapshotService struct {
	SaveDir string
}

func NewSnapshotService(dir string) *SnapshotService {
	return &SnapshotService{SaveDir: dir}
}

// Save пишет снимок в SaveDir и возвращает путь к файлу.
func (s *SnapshotService) Save(snap *Snapshot) (string, error) {
	if err := os.MkdirAll(s.SaveDir, 0o755); err != nil {
		return "", fmt.Errorf("create save dir: %w", err)
	}

	filename := fmt.Sprintf("memory_%d_depth%d_%d.dcmm", snap.Seed, snap.Depth, snap.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeBinary(w, snap); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return path, nil
}

func writeBinary(w io.Writer, s *Snapshot) error {
	if s.Width > math.MaxUint16 || s.Height > math.MaxUint16 {
		return fmt.Errorf("level too large: %dx%d", s.Width, s.Height)
	}

	// 1. Глобальный заголовок
	header := SnapshotFileHeader{
		Version:   Version1,
		Seed:      s.Seed,
		Timestamp: s.Timestamp,
		Depth:     int32(s.Depth),
		Width:     uint16(s.Width),
		Height:    uint16(s.Height),
		CellCount: uint32(len(s.Cells)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Клетки
	for _, cell := range s.Cells {
		if len(cell.Pieces) > math.MaxUint8 {
			return fmt.Errorf("too many pieces at %v: %d", cell.Pos, len(cell.Pieces))
		}
		ch := CellHeader{
			X:          uint16(cell.Pos.X),
			Y:          uint16(cell.Pos.Y),
			PieceCount: uint8(len(cell.Pieces)),
		}
		if err := binary.Write(w, binary.LittleEndian, &ch); err != nil {
			return err
		}

		for _, p := range cell.Pieces {
			if err := writePiece(w, p); err != nil {
				return fmt.Errorf("cell %v: %w", cell.Pos, err)
			}
		}
	}

	return nil
}

func writePiece(w io.Writer, p PieceRecord) error {
	name, text := []byte(p.Name), []byte(p.Text)
	if len(name) > math.MaxUint8 {
		return fmt.Errorf("name too long: %d", len(name))
	}
	if len(text) > math.MaxUint16 {
		return fmt.Errorf("text too long: %d", len(text))
	}

	ph := PieceHeader{
		Category: uint8(p.Category),
		Symbol:   p.Glyph.Symbol,
		Fg:       uint32(p.Glyph.Fg),
		Bg:       uint32(p.Glyph.Bg),
		NameLen:  uint8(len(name)),
		TextLen:  uint16(len(text)),
	}
	if err := binary.Write(w, binary.LittleEndian, &ph); err != nil {
		return err
	}

	// Динамические данные (тело)
	if _, err := w.Write(name); err != nil {
		return err
	}
	_, err := w.Write(text)
	return err
}
