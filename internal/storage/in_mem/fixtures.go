package in_mem

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/video-hunter/internal/domain"
)

type fixtureFile struct {
	Videos []fixtureVideo `yaml:"videos"`
}

type fixtureVideo struct {
	domain.Video `yaml:",inline"`
	// Comments are sentiment scores of individual comments.
	Comments   []float64 `yaml:"comments"`
	Embeddings []string  `yaml:"embeddings"`
}

// LoadFixtures reads a YAML seed file into a new Store.
func LoadFixtures(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	return LoadFixturesFrom(f)
}

func LoadFixturesFrom(r io.Reader) (*Store, error) {
	var file fixtureFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	s := NewStore()
	videos := make([]domain.Video, 0, len(file.Videos))
	for i, fv := range file.Videos {
		if fv.ID == "" {
			return nil, fmt.Errorf("fixture video %d has no id", i)
		}
		videos = append(videos, fv.Video)
	}
	if err := s.SaveBulk(context.Background(), videos); err != nil {
		return nil, err
	}
	for _, fv := range file.Videos {
		if len(fv.Comments) > 0 {
			s.AddComments(fv.ID, fv.Comments...)
		}
		for _, t := range fv.Embeddings {
			s.AddEmbedding(fv.ID, t)
		}
	}

	return s, nil
}
