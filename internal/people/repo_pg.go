package people

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"teamlens-backend/internal/talents"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, person Person) error {
	const query = `
INSERT INTO people (id, name, personality_type, ranked_talents, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())`
	ranked, err := marshalRanked(person.RankedTalents)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		person.ID,
		person.Name,
		nullableString(person.PersonalityType),
		ranked,
	)
	return err
}

func (r *PGRepo) Update(ctx context.Context, person Person) error {
	const query = `
UPDATE people SET
  name = $2,
  personality_type = $3,
  ranked_talents = $4,
  updated_at = now()
WHERE id = $1`
	ranked, err := marshalRanked(person.RankedTalents)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		person.ID,
		person.Name,
		nullableString(person.PersonalityType),
		ranked,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, personID string) (Person, error) {
	const query = `
SELECT id, name, personality_type, ranked_talents, created_at, updated_at
FROM people
WHERE id = $1
LIMIT 1`
	person, err := scanPerson(r.DB.QueryRowContext(ctx, query, personID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Person{}, ErrNotFound
		}
		return Person{}, err
	}
	return person, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Person, error) {
	const query = `
SELECT id, name, personality_type, ranked_talents, created_at, updated_at
FROM people
ORDER BY name, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Person
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, person)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, personID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM people WHERE id = $1`, personID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (Person, error) {
	var person Person
	var personalityType sql.NullString
	var ranked []byte
	err := row.Scan(
		&person.ID,
		&person.Name,
		&personalityType,
		&ranked,
		&person.CreatedAt,
		&person.UpdatedAt,
	)
	if err != nil {
		return Person{}, err
	}
	if personalityType.Valid {
		person.PersonalityType = personalityType.String
	}
	if len(ranked) > 0 {
		if err := json.Unmarshal(ranked, &person.RankedTalents); err != nil {
			return Person{}, fmt.Errorf("decode ranked_talents: %w", err)
		}
	}
	return person, nil
}

func marshalRanked(ranked []talents.Ranked) ([]byte, error) {
	if ranked == nil {
		ranked = []talents.Ranked{}
	}
	data, err := json.Marshal(ranked)
	if err != nil {
		return nil, fmt.Errorf("encode ranked_talents: %w", err)
	}
	return data, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
