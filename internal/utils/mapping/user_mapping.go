package mapping

import (
	"database/sql"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/models"
)

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:         d.UserID,
		Username:       d.Username,
		PasswordHash:   d.PasswordHash,
		Email:          toNullString(d.Email),
		FirstName:      toNullString(d.FirstName),
		LastName:       toNullString(d.LastName),
		InitialBalance: d.InitialBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.DateOfBirth != nil {
		m.DateOfBirth = sql.NullTime{Time: *d.DateOfBirth, Valid: true}
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:         m.UserID,
		Username:       m.Username,
		PasswordHash:   m.PasswordHash,
		Email:          m.Email.String,
		FirstName:      m.FirstName.String,
		LastName:       m.LastName.String,
		InitialBalance: m.InitialBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.DateOfBirth.Valid {
		dob := m.DateOfBirth.Time
		d.DateOfBirth = &dob
	}
	return d
}
