package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestEffectiveRolesIgnoresInactiveAffiliations(t *testing.T) {
	u := User{Affiliations: []Affiliation{
		{Role: RoleStudent, Status: AffiliationInactive},
		{Role: RoleLecturer, Status: AffiliationActive},
		{Role: RoleAcademicSecretary},
	}}

	roles := u.EffectiveRoles()
	require.Len(t, roles, 1)
	require.True(t, roles.Has(RoleLecturer))
	require.False(t, roles.Has(RoleStudent))
	require.False(t, roles.Has(RoleAcademicSecretary))
}

func TestEffectiveRolesMayBeEmptyOrMany(t *testing.T) {
	require.Empty(t, User{}.EffectiveRoles())

	u := User{Affiliations: []Affiliation{
		{Role: RoleStudent, Status: AffiliationActive},
		{Role: RoleAcademicSecretary, Status: AffiliationActive},
		{Role: RoleStudent, Status: AffiliationActive},
	}}
	roles := u.EffectiveRoles()
	require.Len(t, roles, 2)
	require.True(t, roles.Has(RoleStudent))
	require.True(t, roles.Has(RoleAcademicSecretary))
}

func TestEnumsAreClosed(t *testing.T) {
	require.True(t, EventApproved.Valid())
	require.False(t, EventStatus("aprobado").Valid())
	require.True(t, EventAcademic.Valid())
	require.False(t, EventType("").Valid())
	require.True(t, ApprovalTeachingDirector.Valid())
	require.True(t, OrganizerSecondary.Valid())
	require.True(t, ParticipationOther.Valid())
	require.True(t, FacilityField.Valid())
	require.False(t, FacilityType("piscina").Valid())
	require.True(t, EvaluationRejected.Valid())
	require.False(t, Role("decano").Valid())
	require.True(t, PasswordInactive.Valid())
	require.False(t, AffiliationStatus("").Valid())
}

func TestFacultyAssignMissingIDs(t *testing.T) {
	kept := bson.NewObjectID()
	f := Faculty{
		Units:    []AcademicUnit{{ID: kept, Name: "Sistemas"}, {Name: "Civil"}},
		Programs: []Program{{Name: "Ingenieria de Software"}},
	}

	f.AssignMissingIDs()

	require.Equal(t, kept, f.Units[0].ID)
	require.False(t, f.Units[1].ID.IsZero())
	require.False(t, f.Programs[0].ID.IsZero())
}

func TestUserFullName(t *testing.T) {
	require.Equal(t, "Ana Perez", User{Name: "Ana", Surname: "Perez"}.FullName())
	require.Equal(t, "Ana", User{Name: "Ana"}.FullName())
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{
		"2024-05-01",
		"2024-05-01T00:00:00",
		"2024-05-01T00:00:00.000",
		"2024-05-01T00:00",
		"2024-05-01 00:00:00",
		"2024-05-01T00:00:00Z",
		"2024-04-30T19:00:00-05:00",
	} {
		got, err := ParseTimestamp(s)
		require.NoError(t, err, s)
		require.True(t, want.Equal(got), s)
	}

	_, err := ParseTimestamp("01/05/2024")
	require.Error(t, err)
}

func TestRealizationDecodesDateForms(t *testing.T) {
	var r Realization
	require.NoError(t, json.Unmarshal([]byte(`{"instalaciones":[{"instalacionId":"F","capacidadInstalacion":10}],
		"fecha":"2024-05-01","horaInicio":"09:00","horaFin":"10:00"}`), &r))
	require.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), r.Date)
	require.Equal(t, "F", r.Facilities[0].FacilityID)
	require.Equal(t, "10:00", r.EndTime)

	require.Error(t, json.Unmarshal([]byte(`{"fecha":"mayo"}`), &r))

	out, err := json.Marshal(r)
	require.NoError(t, err)
	require.Contains(t, string(out), `"fecha":"2024-05-01T00:00:00Z"`)
}
