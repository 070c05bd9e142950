package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type FileStoreTestSuite struct {
	suite.Suite
	dir   string
	store Store
}

func (s *FileStoreTestSuite) SetupTest() {
	s.dir = filepath.Join(s.T().TempDir(), "data")

	store, err := NewFile(&FileConfig{
		Dir: s.dir,
	})
	s.Require().NoError(err)
	s.store = store
}

func TestFileStoreTestSuite(t *testing.T) {
	suite.Run(t, new(FileStoreTestSuite))
}

func (s *FileStoreTestSuite) TestNewFileCreatesDirectory() {
	info, err := os.Stat(s.dir)
	s.Require().NoError(err)
	s.True(info.IsDir())
}

func (s *FileStoreTestSuite) TestNewFileValidatesConfig() {
	_, err := NewFile(nil)
	s.Error(err)

	_, err = NewFile(&FileConfig{})
	s.Error(err)
}

func (s *FileStoreTestSuite) TestSaveAndLoad() {
	ctx := context.Background()
	err := s.store.Save(ctx, &SaveInput{
		Name:     "players",
		Document: &testDocument{Entries: map[string]int{"a": 1}},
	})
	s.Require().NoError(err)

	var loaded testDocument
	s.Require().NoError(s.store.Load(ctx, &LoadInput{Name: "players", Target: &loaded}))
	s.Equal(map[string]int{"a": 1}, loaded.Entries)
}

func (s *FileStoreTestSuite) TestSaveLeavesNoTempFiles() {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.store.Save(ctx, &SaveInput{
			Name:     "sessions",
			Document: &testDocument{Entries: map[string]int{"n": i}},
		}))
	}

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("sessions.json", entries[0].Name())

	var loaded testDocument
	s.Require().NoError(s.store.Load(ctx, &LoadInput{Name: "sessions", Target: &loaded}))
	s.Equal(2, loaded.Entries["n"])
}

func (s *FileStoreTestSuite) TestLoadMissingDocument() {
	var loaded testDocument
	err := s.store.Load(context.Background(), &LoadInput{Name: "missing", Target: &loaded})
	s.ErrorIs(err, ErrDocumentNotFound)
}

func (s *FileStoreTestSuite) TestLoadCorruptDocument() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "players.json"), []byte("{"), 0o644))

	var loaded testDocument
	err := s.store.Load(context.Background(), &LoadInput{Name: "players", Target: &loaded})
	s.Require().Error(err)
	s.NotErrorIs(err, ErrDocumentNotFound)
}
