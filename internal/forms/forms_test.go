package forms

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parc-info/internal/entities"
)

func TestParseMoney(t *testing.T) {
	cost, err := ParseMoney("12.50")
	require.NoError(t, err)
	assert.Equal(t, null.Int64From(1250), cost)

	cost, err = ParseMoney("12,50")
	require.NoError(t, err)
	assert.Equal(t, null.Int64From(1250), cost)

	// champ vide => null, jamais 0
	cost, err = ParseMoney("")
	require.NoError(t, err)
	assert.False(t, cost.Valid)

	cost, err = ParseMoney("0")
	require.NoError(t, err)
	assert.Equal(t, null.Int64From(0), cost)

	_, err = ParseMoney("abc")
	assert.Error(t, err)

	_, err = ParseMoney("-3")
	assert.Error(t, err)

	// arrondi au centime
	cost, err = ParseMoney("0.005")
	require.NoError(t, err)
	assert.Equal(t, int64(1), cost.Int64)
}

func TestMoneyRoundTrip(t *testing.T) {
	// "12.50" -> 1250 -> "12.50", aller-retour idempotent
	cents, err := ParseMoney("12.50")
	require.NoError(t, err)
	assert.Equal(t, "12.50", FormatMoney(cents))

	assert.Equal(t, "", FormatMoney(null.Int64{}))
}

func TestLicenseFormNormalization(t *testing.T) {
	form := LicenseForm{
		Name:         "Office 365",
		Vendor:       "Microsoft",
		Type:         "Microsoft Office",
		Cost:         "",
		MaxUsers:     "",
		CurrentUsers: "",
	}
	require.Nil(t, form.Validate())

	payload := form.Payload()
	assert.False(t, payload.Cost.Valid, "cost vide doit donner null, pas 0")
	assert.False(t, payload.MaxUsers.Valid, "maxUsers vide signifie illimité => null")
	assert.Equal(t, int64(0), payload.CurrentUsers, "currentUsers vide => 0")
	assert.False(t, payload.LicenseKey.Valid)
	assert.False(t, payload.ExpiryDate.Valid)
}

func TestLicensePrefillRoundTrip(t *testing.T) {
	stored := entities.License{
		Name:         "Antivirus Pro",
		Vendor:       "ESET",
		Type:         "Antivirus",
		Cost:         null.Int64From(1250),
		MaxUsers:     null.Int64From(25),
		CurrentUsers: 10,
	}
	form := PrefillLicense(stored)
	assert.Equal(t, "12.50", form.Cost)
	assert.Equal(t, "25", form.MaxUsers)

	require.Nil(t, form.Validate())
	payload := form.Payload()
	assert.Equal(t, null.Int64From(1250), payload.Cost)
	assert.Equal(t, null.Int64From(25), payload.MaxUsers)
	assert.Equal(t, int64(10), payload.CurrentUsers)
}

func TestEquipmentFormUnassignedSentinel(t *testing.T) {
	form := EquipmentForm{
		Type:         entities.EquipmentTypeComputer,
		Model:        "ThinkPad T14",
		SerialNumber: "SN-001",
		PurchaseDate: "2024-01-15",
		Status:       entities.EquipmentStatusInService,
		AssignedTo:   UnassignedSentinel,
	}
	require.Nil(t, form.Validate())

	payload := form.Payload()
	assert.False(t, payload.AssignedTo.Valid, `"unassigned" doit devenir null`)
	assert.NotEqual(t, UnassignedSentinel, payload.AssignedTo.String)
}

func TestEquipmentFormValidation(t *testing.T) {
	form := EquipmentForm{Type: "imprimante", Status: "cassé"}
	errs := form.Validate()
	require.NotNil(t, errs)

	// une seule erreur par champ, la première règle en échec
	assert.Contains(t, errs, "type")
	assert.Contains(t, errs, "model")
	assert.Contains(t, errs, "serialNumber")
	assert.Contains(t, errs, "purchaseDate")
	assert.Contains(t, errs, "status")
}

func TestMaintenanceFormDateOrder(t *testing.T) {
	form := MaintenanceForm{
		Type:        entities.MaintenanceTypePreventive,
		Title:       "Mise à jour serveurs",
		Description: "Patching mensuel",
		StartDate:   "2024-05-01",
		EndDate:     "2024-04-30",
		Status:      "planifié",
	}
	errs := form.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "endDate")

	form.EndDate = "2024-05-02"
	assert.Nil(t, form.Validate())
}

func TestMaintenanceStatusNormalization(t *testing.T) {
	cases := map[string]string{
		"planifié": entities.MaintenanceStatusPlanned,
		"planifie": entities.MaintenanceStatusPlanned,
		"en cours": entities.MaintenanceStatusInProgress,
		"en_cours": entities.MaintenanceStatusInProgress,
		"Terminé":  entities.MaintenanceStatusDone,
		"annule":   entities.MaintenanceStatusCancelled,
	}
	for in, want := range cases {
		got, ok := NormalizeMaintenanceStatus(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := NormalizeMaintenanceStatus("en attente")
	assert.False(t, ok)

	form := MaintenanceForm{
		Type:        entities.MaintenanceTypeCorrective,
		Title:       "Remplacement disque",
		Description: "Disque défaillant sur srv-02",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-02",
		Status:      "en cours",
	}
	require.Nil(t, form.Validate())
	assert.Equal(t, entities.MaintenanceStatusInProgress, form.Payload().Status)
}

func TestNormalizeAssignee(t *testing.T) {
	assert.False(t, NormalizeAssignee("unassigned").Valid)
	assert.False(t, NormalizeAssignee("").Valid)
	assert.False(t, NormalizeAssignee("  ").Valid)
	assert.Equal(t, null.StringFrom("emp-42"), NormalizeAssignee("emp-42"))
}

func TestErrorsKeepsFirstMessage(t *testing.T) {
	errs := Errors{}
	errs.add("email", "champ obligatoire")
	errs.add("email", "adresse email invalide")
	assert.Equal(t, "champ obligatoire", errs["email"])
}

func TestUserFormRole(t *testing.T) {
	form := UserForm{Email: "a@b.fr", Password: "secret1", Role: "superadmin"}
	errs := form.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "role")

	form.Role = "technicien"
	assert.Nil(t, form.Validate())
}
