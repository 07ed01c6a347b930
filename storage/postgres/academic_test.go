package postgres_test

import (
	"context"
	"testing"

	"rmu/credit_bank_service/models"
	lq "rmu/credit_bank_service/pkg/listquery"

	"github.com/spf13/cast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDepartment(t *testing.T, name string, institutionID int64) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO departments (institution_id, name, code) VALUES ($1, $2, $3) RETURNING id`,
		institutionID, name, uniqueCode("DP"),
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestMajorList(t *testing.T) {
	requireDB(t)
	ctx := context.Background()

	seedMajorID, programID := seedMajor(t)
	seeded, err := strg.Major().GetByID(ctx, seedMajorID)
	require.NoError(t, err)

	paid := false
	major, err := strg.Major().Create(ctx, &models.CreateMajorRequest{
		DepartmentId: seeded.DepartmentId,
		ProgramId:    programID,
		Code:         uniqueCode("CS"),
		Name:         "Computer Science",
		ShortName:    "QZXCOMP",
		TotalCredits: 130,
		IsFree:       &paid,
	})
	require.NoError(t, err)
	require.NotNil(t, major.DepartmentName)

	dept := cast.ToString(seeded.DepartmentId)

	res, err := strg.Major().GetList(ctx, lq.Params{"departmentId": dept, "search": "qzxcomp"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, major.Id, res.Data[0].Id)

	res, err = strg.Major().GetList(ctx, lq.Params{"departmentId": dept, "isFree": "false"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, int64(1), res.Pagination.Total)

	res, err = strg.Major().GetList(ctx, lq.Params{"departmentId": dept, "programId": cast.ToString(programID), "status": "ACTIVE"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Pagination.Total)

	_, err = strg.Major().GetList(ctx, lq.Params{"accessLevel": "EVERYONE"})
	assert.True(t, lq.IsParamError(err))
}

func TestCurriculumList(t *testing.T) {
	requireDB(t)
	ctx := context.Background()

	majorID, programID := seedMajor(t)
	academicYear := int32(2567)
	for _, year := range []int32{2023, 2024, 2024} {
		_, err := strg.Curriculum().Create(ctx, &models.CreateCurriculumRequest{
			ProgramId:    programID,
			MajorId:      majorID,
			Name:         "Agronomy " + cast.ToString(year),
			Year:         year,
			AcademicYear: &academicYear,
			Version:      "v" + cast.ToString(year),
		})
		require.NoError(t, err)
	}

	major := cast.ToString(majorID)

	res, err := strg.Curriculum().GetList(ctx, lq.Params{"majorId": major, "year": "2024"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Pagination.Total)
	for _, c := range res.Data {
		assert.Equal(t, int32(2024), c.Year)
		require.NotNil(t, c.MajorName)
	}

	res, err = strg.Curriculum().GetList(ctx, lq.Params{"majorId": major, "academicYear": "2567", "search": "v2023"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Agronomy 2023", res.Data[0].Name)

	_, err = strg.Curriculum().GetList(ctx, lq.Params{"year": "1800"})
	assert.True(t, lq.IsParamError(err))
}

func TestInstructorList(t *testing.T) {
	requireDB(t)
	ctx := context.Background()

	deptID := seedDepartment(t, "Faculty of Fisheries", 1)
	position := "Associate Professor"
	pending := "PENDING"

	_, err := strg.Instructor().Create(ctx, &models.CreateInstructorRequest{Name: fakeData.Name(), Position: &position, DepartmentId: &deptID})
	require.NoError(t, err)
	_, err = strg.Instructor().Create(ctx, &models.CreateInstructorRequest{Name: fakeData.Name(), DepartmentId: &deptID, Status: &pending})
	require.NoError(t, err)

	dept := cast.ToString(deptID)

	res, err := strg.Instructor().GetList(ctx, lq.Params{"departmentId": dept, "search": "associate"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	require.NotNil(t, res.Data[0].DepartmentName)
	assert.Equal(t, "Faculty of Fisheries", *res.Data[0].DepartmentName)

	res, err = strg.Instructor().GetList(ctx, lq.Params{"departmentId": dept, "status": "PENDING"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Pagination.Total)

	_, err = strg.Instructor().GetList(ctx, lq.Params{"status": "RETIRED"})
	assert.True(t, lq.IsParamError(err))
}

func TestDepartmentList(t *testing.T) {
	requireDB(t)
	ctx := context.Background()

	const institution = 4242
	first := seedDepartment(t, "Aquaculture", institution)
	seedDepartment(t, "Zoology", institution)

	res, err := strg.Department().GetList(ctx, lq.Params{"institutionId": cast.ToString(institution)})
	require.NoError(t, err)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Aquaculture", res.Data[0].Name)
	assert.Equal(t, "Zoology", res.Data[1].Name)

	res, err = strg.Department().GetList(ctx, lq.Params{"institutionId": cast.ToString(institution), "search": "aqua", "status": "ACTIVE"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, first, res.Data[0].Id)

	got, err := strg.Department().GetByID(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "Aquaculture", got.Name)
}
