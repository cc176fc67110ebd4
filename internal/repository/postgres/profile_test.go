package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/thansohoc/numerology-api/internal/domain"
	"github.com/thansohoc/numerology-api/internal/service/profile"
)

func TestProfileRepoGetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "life_path_number", "destiny_number", "soul_urge_number",
		"personality_number", "current_personal_year", "current_personal_month",
		"interpretations", "calculated_at", "updated_at",
	}).AddRow(
		"p-1", "u-1", 1, 2, 6, 5, 5, 1,
		[]byte(`{"lifePathNumber_1":"Lãnh đạo, độc lập, sáng tạo."}`), now, now,
	)
	mock.ExpectQuery("SELECT id, user_id, life_path_number").
		WithArgs("u-1").
		WillReturnRows(rows)

	repo := NewProfileRepo(db)
	p, err := repo.GetByUserID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetByUserID error: %v", err)
	}
	if p.LifePath != 1 || p.Destiny != 2 || p.SoulUrge != 6 || p.Personality != 5 {
		t.Errorf("unexpected numbers: %+v", p.NumberSet)
	}
	if p.Interpretations["lifePathNumber_1"] == "" {
		t.Error("interpretations not decoded")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestProfileRepoGetByUserIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, user_id, life_path_number").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewProfileRepo(db)
	_, err = repo.GetByUserID(context.Background(), "missing")
	if err != profile.ErrNotFound {
		t.Errorf("error = %v, want profile.ErrNotFound", err)
	}
}

func TestProfileRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO numerology_profiles").
		WillReturnRows(sqlmock.NewRows([]string{"id", "calculated_at", "updated_at"}).
			AddRow("p-1", now, now))

	repo := NewProfileRepo(db)
	p := &domain.Profile{
		UserID: "u-1",
		NumberSet: domain.NumberSet{
			LifePath: 1, Destiny: 2, SoulUrge: 6, Personality: 5,
			PersonalYear: 5, PersonalMonth: 1,
		},
		Interpretations: map[string]string{"destinyNumber_2": "Hợp tác và sự cân bằng."},
	}
	if err := repo.Upsert(context.Background(), p); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if p.ID != "p-1" {
		t.Errorf("ID = %q, want p-1", p.ID)
	}
	if p.CalculatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("timestamps not populated from RETURNING")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
