package helper_test

import (
	"os"
	"testing"

	"rmu/credit_bank_service/pkg/logger"

	"github.com/manveru/faker"
)

var (
	log      logger.LoggerI
	fakeData *faker.Faker
)

func TestMain(m *testing.M) {
	log = logger.Nop()

	var err error
	fakeData, err = faker.New("en")
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}
