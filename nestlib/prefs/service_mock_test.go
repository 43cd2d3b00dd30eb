// External test package: the generated mock imports prefs, so tests
// using it cannot live inside package prefs itself.
package prefs_test

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/daiphu1801/NestGameLibrary/nestlib/catalog"
	"github.com/daiphu1801/NestGameLibrary/nestlib/prefs"
	"github.com/daiphu1801/NestGameLibrary/nestlib/prefs/mock"
)

func TestService_RecordPlay(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().
		GetRecent(gomock.Any(), "123").
		Return([]prefs.RecentGame{{GameID: 7, Name: "Tetris"}}, nil)
	repo.EXPECT().
		SaveRecent(gomock.Any(), "123", gomock.Any()).
		Return(nil)

	s := prefs.NewService(repo, 0)
	got, err := s.RecordPlay(context.Background(), "123", catalog.GameRecord{
		ID:       1,
		Name:     "Contra",
		Category: catalog.CategoryShooter,
		Rating:   5,
	})
	if err != nil {
		t.Fatalf("RecordPlay() error = %v", err)
	}
	if len(got) != 2 || got[0].GameID != 1 || got[1].GameID != 7 {
		t.Errorf("RecordPlay() = %+v, want Contra then Tetris", got)
	}
	if got[0].Category != catalog.CategoryShooter {
		t.Errorf("entry category = %v, want shooter", got[0].Category)
	}
}

func TestService_SetLanguage(t *testing.T) {
	tests := []struct {
		name     string
		language string
		wantErr  bool
	}{
		{name: "english", language: prefs.LanguageEnglish},
		{name: "vietnamese", language: prefs.LanguageVietnamese},
		{name: "unsupported", language: "fr", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mock.NewMockRepository(gomock.NewController(t))
			if !tt.wantErr {
				repo.EXPECT().
					GetPreferences(gomock.Any(), "123").
					Return(prefs.DefaultPreferences("123"), nil)
				repo.EXPECT().
					SavePreferences(gomock.Any(), gomock.Any()).
					Return(nil)
			}

			s := prefs.NewService(repo, 0)
			got, err := s.SetLanguage(context.Background(), "123", tt.language)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetLanguage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.Language != tt.language {
				t.Errorf("Language = %q, want %q", got.Language, tt.language)
			}
		})
	}
}

func TestService_SetTheme_persistFailure(t *testing.T) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	repo.EXPECT().
		GetPreferences(gomock.Any(), "123").
		Return(prefs.DefaultPreferences("123"), nil)
	repo.EXPECT().
		SavePreferences(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("connection lost"))

	s := prefs.NewService(repo, 0)
	if _, err := s.SetTheme(context.Background(), "123", prefs.ThemeLight); err == nil {
		t.Error("SetTheme() succeeded despite save failure")
	}
}
