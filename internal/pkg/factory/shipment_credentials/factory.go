package shipment_credentials

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Смещение для created_at: локальное время считается как UTC+5:30
// константной арифметикой, без таймзонной базы и DST.
const createdAtOffset = 5*time.Hour + 30*time.Minute

const createdAtLayout = "2006-01-02 15:04:05"

type CredentialsFactory struct{}

func New() *CredentialsFactory {
	return &CredentialsFactory{}
}

// NewIdentifiers генерирует пару идентификаторов из одного случайного числа
// в [0, 99999]: iot-<5 цифр> и SHIP-<5 цифр>. Коллизии со store не проверяются,
// дубликат всплывет как конфликт уникальности при вставке.
func (f *CredentialsFactory) NewIdentifiers() (string, string) {
	n := rand.IntN(100000)
	return fmt.Sprintf("iot-%05d", n), fmt.Sprintf("SHIP-%05d", n)
}

func (f *CredentialsFactory) CreatedAt(now time.Time) string {
	return now.UTC().Add(createdAtOffset).Format(createdAtLayout)
}
