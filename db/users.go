package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SujayCh07/codelinc10-sub000/models"
)

func UpsertUser(userID, email string, status models.UserStatus) error {
	query := `
		INSERT INTO users (id, email, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET email = $2, status = $3
	`
	_, err := DB.Exec(query, userID, email, status)
	if err != nil {
		return fmt.Errorf("error upserting user %s: %v", userID, err)
	}
	return nil
}

func UpdateStatusByUserID(userID string, status models.UserStatus) error {
	query := `
		UPDATE users
		SET status = $1
		WHERE id = $2
	`
	_, err := DB.Exec(query, status, userID)
	if err != nil {
		return fmt.Errorf("error updating status for user %s: %v", userID, err)
	}
	return nil
}

func RecordConsent(userID string) error {
	query := `
		UPDATE users
		SET consent_retrieved = true, consent_retrieved_at = $1
		WHERE id = $2
	`
	_, err := DB.Exec(query, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("error recording consent for user %s: %v", userID, err)
	}
	return nil
}

func GetUserByID(userID string) (*models.User, error) {
	query := `
		SELECT id, email, status, consent_retrieved, consent_retrieved_at
		FROM users
		WHERE id = $1
	`
	row := DB.QueryRow(query, userID)
	user := &models.User{}
	err := row.Scan(&user.UserID, &user.Email, &user.Status, &user.ConsentRetrieved, &user.ConsentRetrievedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting user by ID %s: %v", userID, err)
	}
	return user, nil
}

// DeleteUserDataByID removes everything stored in Postgres for a user in a
// single transaction.
func DeleteUserDataByID(userID string) (err error) {
	tx, err := DB.Begin()
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM profiles WHERE user_id = $1`, userID); err != nil {
		return err
	}
	if _, err = tx.Exec(`UPDATE users SET status = $1 WHERE id = $2`, models.UserStatusDeleted, userID); err != nil {
		return err
	}

	return nil
}
