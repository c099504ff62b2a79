package impl

import (
	"io"
	"log/slog"
	"time"

	"macts/config"
	"macts/internal/domain/entity"

	"github.com/google/uuid"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTapConfig() *config.TapConfig {
	return &config.TapConfig{
		CooldownDuration:      60 * time.Second,
		AlertDisplayDuration:  5 * time.Second,
		ReferencePollInterval: 10 * time.Second,
	}
}

func newTestReference(subjectID, tagValue string) *entity.IdentityReference {
	return &entity.IdentityReference{
		SubjectID: subjectID,
		TagValue:  tagValue,
		Profile: entity.StudentProfile{
			UserID:     subjectID,
			FirstName:  "Juan",
			MiddleName: "Reyes",
			LastName:   "Dela Cruz",
			TUPTID:     "TUPT-21-1234",
			Course:     "BSIT",
			Section:    "3A",
			Email:      "juan.delacruz@tup.edu.ph",
			PhotoURL:   "https://cdn.example.com/photos/juan.png",
			TagValue:   tagValue,
		},
	}
}

func newTestDevice(subjectID string) *entity.RegisteredDevice {
	return &entity.RegisteredDevice{
		ID:                uuid.New(),
		UserID:            subjectID,
		Brand:             "Samsung",
		SerialNumber:      "SN-0042",
		RegistrationToken: "reg-token-0042",
		FCMToken:          "fcm-token-0042",
	}
}
