package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etudeproject/etude/internal/app/models/dto"
	"github.com/etudeproject/etude/internal/pkg/apperrors"
	"github.com/etudeproject/etude/internal/testutil"
)

func strPtr(s string) *string { return &s }

func newStudentServiceForTest() (*StudentService, *testutil.MemStudentRepo) {
	repo := testutil.NewMemStudentRepo()
	return NewStudentService(repo), repo
}

func seedStudents(t *testing.T, svc *StudentService, count int) []string {
	t.Helper()
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		student, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
			Name:   fmt.Sprintf("Student %02d", i),
			Email:  fmt.Sprintf("student%02d@x.com", i),
			Course: "CS",
			Branch: "Main",
		})
		require.NoError(t, err)
		ids = append(ids, student.ID.Hex())
	}
	return ids
}

func TestCreateStudentThenGet(t *testing.T) {
	svc, _ := newStudentServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{
		Name:   "Ada Lovelace",
		Email:  "ada@x.com",
		Course: "Mathematics",
		Branch: "Analytical Engines",
	})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())
	assert.NotNil(t, created.ProjectIDs)
	assert.Empty(t, created.ProjectIDs)

	fetched, err := svc.GetStudentByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateStudentRejectsBlankName(t *testing.T) {
	svc, _ := newStudentServiceForTest()

	_, err := svc.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		Name:   "   ",
		Email:  "ada@x.com",
		Course: "Mathematics",
		Branch: "Main",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetStudentByIDErrors(t *testing.T) {
	svc, _ := newStudentServiceForTest()
	ctx := context.Background()

	_, err := svc.GetStudentByID(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, apperrors.ErrInvalidObjectID)

	_, err = svc.GetStudentByID(ctx, "65f000000000000000000000")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestUpdateStudentPartial(t *testing.T) {
	svc, _ := newStudentServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{
		Name:   "Ada Lovelace",
		Email:  "ada@x.com",
		Course: "Mathematics",
		Branch: "Main",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStudent(ctx, created.ID.Hex(), &dto.UpdateStudentRequest{
		Course: strPtr("Computing"),
	})
	require.NoError(t, err)

	// Touched field changed, everything else untouched
	assert.Equal(t, "Computing", updated.Course)
	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, "ada@x.com", updated.Email)
	assert.Equal(t, "Main", updated.Branch)
}

func TestUpdateStudentEmptyPatchIsNoOp(t *testing.T) {
	svc, _ := newStudentServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{
		Name:   "Ada Lovelace",
		Email:  "ada@x.com",
		Course: "Mathematics",
		Branch: "Main",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStudent(ctx, created.ID.Hex(), &dto.UpdateStudentRequest{})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
}

func TestUpdateStudentRejectsBlankName(t *testing.T) {
	svc, _ := newStudentServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{
		Name:   "Ada Lovelace",
		Email:  "ada@x.com",
		Course: "Mathematics",
		Branch: "Main",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStudent(ctx, created.ID.Hex(), &dto.UpdateStudentRequest{
		Name: strPtr("  "),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateStudentUnknownID(t *testing.T) {
	svc, _ := newStudentServiceForTest()

	_, err := svc.UpdateStudent(context.Background(), "65f000000000000000000000", &dto.UpdateStudentRequest{
		Course: strPtr("Computing"),
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDeleteStudent(t *testing.T) {
	svc, _ := newStudentServiceForTest()
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{
		Name:   "Ada Lovelace",
		Email:  "ada@x.com",
		Course: "Mathematics",
		Branch: "Main",
	})
	require.NoError(t, err)
	id := created.ID.Hex()

	require.NoError(t, svc.DeleteStudent(ctx, id))

	_, err = svc.GetStudentByID(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	// Deleting again fails the same way
	assert.ErrorIs(t, svc.DeleteStudent(ctx, id), apperrors.ErrStudentNotFound)
}

func TestListStudentsPagination(t *testing.T) {
	svc, _ := newStudentServiceForTest()
	ctx := context.Background()
	seedStudents(t, svc, 25)

	seen := make(map[string]bool)
	for page := 1; page <= 3; page++ {
		students, err := svc.ListStudents(ctx, page, 10, "", "")
		require.NoError(t, err)
		if page < 3 {
			assert.Len(t, students, 10)
		} else {
			assert.Len(t, students, 5)
		}
		for _, student := range students {
			hex := student.ID.Hex()
			assert.False(t, seen[hex], "student %s returned on more than one page", hex)
			seen[hex] = true
		}
	}
	assert.Len(t, seen, 25)

	// Past the last page returns an empty list, not an error
	students, err := svc.ListStudents(ctx, 4, 10, "", "")
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestListStudentsNameFilterIsCaseInsensitive(t *testing.T) {
	svc, _ := newStudentServiceForTest()
	ctx := context.Background()

	_, err := svc.CreateStudent(ctx, &dto.CreateStudentRequest{
		Name: "Grace Hopper", Email: "grace@x.com", Course: "CS", Branch: "Main",
	})
	require.NoError(t, err)
	_, err = svc.CreateStudent(ctx, &dto.CreateStudentRequest{
		Name: "Alan Turing", Email: "alan@x.com", Course: "CS", Branch: "Main",
	})
	require.NoError(t, err)

	students, err := svc.ListStudents(ctx, 1, 10, "gRaCe", "")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Grace Hopper", students[0].Name)
}

func TestListStudentsIDFilter(t *testing.T) {
	svc, _ := newStudentServiceForTest()
	ctx := context.Background()
	ids := seedStudents(t, svc, 3)

	students, err := svc.ListStudents(ctx, 1, 10, "", ids[1])
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, ids[1], students[0].ID.Hex())

	_, err = svc.ListStudents(ctx, 1, 10, "", "bogus")
	assert.ErrorIs(t, err, apperrors.ErrInvalidObjectID)
}
