package roster_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/Flaque/filet"
	"github.com/deskhive/seatdesk/internal/services/roster"
	mocks "github.com/deskhive/seatdesk/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImportFile_Success(t *testing.T) {
	defer filet.CleanUp(t)

	csvContent := "id,name,designation,department\n" +
		"1,Alice Example,Engineer,Platform\n" +
		"2,Bob Example,Analyst,Finance\n"
	file := filet.TmpFile(t, "", csvContent)

	repo := new(mocks.EmployeeRepoIface)
	repo.On("SaveEmployee", mock.Anything, 1, "Alice Example", "Engineer", "Platform").Return(nil)
	repo.On("SaveEmployee", mock.Anything, 2, "Bob Example", "Analyst", "Finance").Return(nil)

	svc := roster.NewService(slog.Default(), repo, nil)
	count, err := svc.ImportFile(context.Background(), file.Name())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	repo.AssertExpectations(t)
}

func TestImportFile_SkipsMalformedRows(t *testing.T) {
	defer filet.CleanUp(t)

	csvContent := "id,name,designation,department\n" +
		"abc,Broken Row,Engineer,Platform\n" +
		"3,,Engineer,Platform\n" +
		"4,Carol Example,Manager,Operations\n"
	file := filet.TmpFile(t, "", csvContent)

	repo := new(mocks.EmployeeRepoIface)
	repo.On("SaveEmployee", mock.Anything, 4, "Carol Example", "Manager", "Operations").Return(nil)

	svc := roster.NewService(slog.Default(), repo, nil)
	count, err := svc.ImportFile(context.Background(), file.Name())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	repo.AssertNumberOfCalls(t, "SaveEmployee", 1)
}

func TestImportFile_MissingColumn(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", "id,name,designation\n1,Alice,Engineer\n")

	repo := new(mocks.EmployeeRepoIface)
	svc := roster.NewService(slog.Default(), repo, nil)
	_, err := svc.ImportFile(context.Background(), file.Name())

	require.ErrorIs(t, err, roster.ErrMissingColumns)
	repo.AssertNotCalled(t, "SaveEmployee",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestImportFile_MissingFile(t *testing.T) {
	t.Parallel()

	repo := new(mocks.EmployeeRepoIface)
	svc := roster.NewService(slog.Default(), repo, nil)
	_, err := svc.ImportFile(context.Background(), "does-not-exist.csv")

	require.Error(t, err)
}

func TestImportFile_SaveError(t *testing.T) {
	defer filet.CleanUp(t)

	file := filet.TmpFile(t, "", "id,name,designation,department\n1,Alice Example,Engineer,Platform\n")

	repo := new(mocks.EmployeeRepoIface)
	repo.On("SaveEmployee", mock.Anything, 1, "Alice Example", "Engineer", "Platform").
		Return(assert.AnError)

	svc := roster.NewService(slog.Default(), repo, nil)
	count, err := svc.ImportFile(context.Background(), file.Name())

	require.Error(t, err)
	assert.Equal(t, 0, count)
}
