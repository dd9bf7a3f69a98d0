package repository

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/zell311-rgb/Emergent-Personal/internal/error_values"
	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

type SettingsRepository struct {
	conn PgConnection
}

func NewSettingsRepo(conn PgConnection) *SettingsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for settingsRepo: " + err.Error())
	}
	return &SettingsRepository{
		conn: conn,
	}
}

func (sr *SettingsRepository) EnsureDefault(ctx context.Context) error {
	_, err := sr.conn.Exec(
		ctx,
		`INSERT INTO settings (id, sendgrid_api_key, sendgrid_sender_email, reminder_recipient_email, weekly_review_day, weekly_review_hour_local, monthly_gift_day, email_enabled, updated_at)
		VALUES ($1, '', '', '', 'Sun', 9, 1, FALSE, NOW())
		ON CONFLICT (id) DO NOTHING;`,
		entity.DefaultSingletonID,
	)
	if err != nil {
		return errors.New("ensuring default settings error: " + err.Error())
	}
	return nil
}

func (sr *SettingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	row := sr.conn.QueryRow(
		ctx,
		`SELECT id, sendgrid_api_key, sendgrid_sender_email, reminder_recipient_email, weekly_review_day, weekly_review_hour_local, monthly_gift_day, email_enabled, updated_at FROM settings WHERE id = $1;`,
		entity.DefaultSingletonID,
	)
	s := entity.Settings{}
	err := row.Scan(&s.ID, &s.SendgridAPIKey, &s.SendgridSenderEmail, &s.ReminderRecipientEmail, &s.WeeklyReviewDay, &s.WeeklyReviewHourLocal, &s.MonthlyGiftDay, &s.EmailEnabled, &s.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, errorvalues.ErrSettingsMissing
		}
		return nil, errors.New("getting settings error: " + err.Error())
	}
	return &s, nil
}

func (sr *SettingsRepository) Update(ctx context.Context, s *entity.Settings) error {
	_, err := sr.conn.Exec(
		ctx,
		`INSERT INTO settings (id, sendgrid_api_key, sendgrid_sender_email, reminder_recipient_email, weekly_review_day, weekly_review_hour_local, monthly_gift_day, email_enabled, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (id) DO UPDATE SET
			sendgrid_api_key = EXCLUDED.sendgrid_api_key,
			sendgrid_sender_email = EXCLUDED.sendgrid_sender_email,
			reminder_recipient_email = EXCLUDED.reminder_recipient_email,
			weekly_review_day = EXCLUDED.weekly_review_day,
			weekly_review_hour_local = EXCLUDED.weekly_review_hour_local,
			monthly_gift_day = EXCLUDED.monthly_gift_day,
			email_enabled = EXCLUDED.email_enabled,
			updated_at = NOW();`,
		entity.DefaultSingletonID,
		s.SendgridAPIKey,
		s.SendgridSenderEmail,
		s.ReminderRecipientEmail,
		s.WeeklyReviewDay,
		s.WeeklyReviewHourLocal,
		s.MonthlyGiftDay,
		s.EmailEnabled,
	)
	if err != nil {
		return errors.New("updating settings error: " + err.Error())
	}
	return nil
}
