package types

import "time"

type Status string

const (
	StatusReceived      Status = "Recibido"
	StatusInRepair      Status = "En reparación"
	StatusAwaitingParts Status = "Esperando repuestos"
	StatusFinished      Status = "Finalizado"
	StatusDelivered     Status = "Entregado"
	StatusBeyondRepair  Status = "Irreparable"
)

type DeviceType string

const (
	DeviceSmartphone DeviceType = "Smartphone"
	DeviceTablet     DeviceType = "Tablet"
	DeviceLaptop     DeviceType = "Laptop"
	DevicePC         DeviceType = "PC"
	DeviceDrone      DeviceType = "Drone"
	DeviceTV         DeviceType = "TV"
	DeviceSmartwatch DeviceType = "Smartwatch"
	DeviceConsole    DeviceType = "Consola"
	DeviceOther      DeviceType = "Otro"
)

// Checklist holds the intake diagnostic flags recorded when a device
// arrives. The zero value (all false) is the documented default.
type Checklist struct {
	PowersOn     bool `json:"powersOn"`
	Charges      bool `json:"charges"`
	HasAudio     bool `json:"hasAudio"`
	ScreenIntact bool `json:"screenIntact"`
	TouchWorks   bool `json:"touchWorks"`
	ButtonsWork  bool `json:"buttonsWork"`
}

type Order struct {
	ID               int        `json:"id" db:"id"`
	CustomerName     string     `json:"customerName" db:"customer_name"`
	ClientDni        string     `json:"clientDni" db:"client_dni"`
	Phone            string     `json:"phone" db:"phone"`
	DeviceType       DeviceType `json:"deviceType" db:"device_type"`
	DeviceModel      string     `json:"deviceModel" db:"device_model"`
	IssueDescription string     `json:"issueDescription" db:"issue_description"`
	Checklist        Checklist  `json:"checklist" db:"checklist"`
	EstimatedCost    int        `json:"estimatedCost" db:"estimated_cost"`
	Deposit          int        `json:"deposit" db:"deposit"`
	Status           Status     `json:"status" db:"status"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`
	// Balance is derived from EstimatedCost and Deposit on every read,
	// never persisted.
	Balance int `json:"balance" db:"-"`
}

// NewOrder is the create payload. DeviceType, Status and Checklist fall
// back to their defaults when left empty.
type NewOrder struct {
	CustomerName     string     `json:"customerName"`
	ClientDni        string     `json:"clientDni"`
	Phone            string     `json:"phone"`
	DeviceType       DeviceType `json:"deviceType"`
	DeviceModel      string     `json:"deviceModel"`
	IssueDescription string     `json:"issueDescription"`
	Checklist        Checklist  `json:"checklist"`
	EstimatedCost    int        `json:"estimatedCost"`
	Deposit          int        `json:"deposit"`
	Status           Status     `json:"status"`
}

// OrderUpdate is a partial update. Nil fields are left untouched.
type OrderUpdate struct {
	CustomerName     *string     `json:"customerName"`
	ClientDni        *string     `json:"clientDni"`
	Phone            *string     `json:"phone"`
	DeviceType       *DeviceType `json:"deviceType"`
	DeviceModel      *string     `json:"deviceModel"`
	IssueDescription *string     `json:"issueDescription"`
	Checklist        *Checklist  `json:"checklist"`
	EstimatedCost    *int        `json:"estimatedCost"`
	Deposit          *int        `json:"deposit"`
	Status           *Status     `json:"status"`
}

type Stats struct {
	TotalOrders     int `json:"totalOrders"`
	ActiveOrders    int `json:"activeOrders"`
	CompletedOrders int `json:"completedOrders"`
	TotalRevenue    int `json:"totalRevenue"`
	PendingRevenue  int `json:"pendingRevenue"`
}

// CalculateBalance returns the amount still owed on an order. Negative
// means the customer overpaid.
func CalculateBalance(estimatedCost int, deposit int) int {
	return estimatedCost - deposit
}

// Completed reports whether s counts as a closed order in statistics.
func (s Status) Completed() bool {
	return s == StatusDelivered || s == StatusFinished || s == StatusBeyondRepair
}

// Normalize applies the documented defaults for omitted fields.
func (o NewOrder) Normalize() NewOrder {
	if o.DeviceType == "" {
		o.DeviceType = DeviceSmartphone
	}
	if o.Status == "" {
		o.Status = StatusReceived
	}
	return o
}
