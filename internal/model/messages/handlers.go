package messages

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"max.ks1230/budget-bot/internal/entity/month"
	"max.ks1230/budget-bot/internal/model/customerr"
)

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I am BudgetRoute bot 🤖\n\n" +
		"/month [YYYY-MM] - open a month\n" +
		"/next - open the following month\n" +
		"/income <name> <amount> - add an income source\n" +
		"/expense <category> <amount> [name] - add an expense\n" +
		"/category <name> - add an expense category\n" +
		"/savings <amount> - set this month's savings\n" +
		"/list - show the month's ledgers\n" +
		"/dashboard - show the month's totals\n" +
		"/lock - close the month for changes\n" +
		"/carry - copy this month into the next one\n" +
		"/report [YYYY-MM] - request the full month report"
	loveToTalkMessage = "I would love to talk about it more!"
	okMessage         = "Gotcha!"

	lockedMonthMessage    = "This month is locked."
	monthLockedNowMessage = "This month is now locked."
	preparingReportMsg    = "Preparing your report, it will arrive shortly..."

	incorrectUsageMessage  = "That is an incorrect command usage"
	incorrectMonthMessage  = "The month is incorrect. Should be YYYY-MM"
	incorrectAmountMessage = "That amount is incorrect"
	incorrectInputMessage  = "That input is incorrect"
	incorrectIndexMessage  = "There is no entry with that number"
	cannotGetMonthMessage  = "Can't get your budget atm. Try later"
	cannotSaveMessage      = "Can't save your budget atm. Try later"
	cannotReportMessage    = "Can't request your report atm. Try later"
)

const (
	startCommand       = "/start"
	monthCommand       = "/month"
	nextCommand        = "/next"
	incomeCommand      = "/income"
	editIncomeCommand  = "/editincome"
	delIncomeCommand   = "/delincome"
	categoryCommand    = "/category"
	expenseCommand     = "/expense"
	editExpenseCommand = "/editexpense"
	delExpenseCommand  = "/delexpense"
	savingsCommand     = "/savings"
	lockCommand        = "/lock"
	carryCommand       = "/carry"
	listCommand        = "/list"
	dashboardCommand   = "/dashboard"
	reportCommand      = "/report"
)

type ledgerStore interface {
	EnsureMonth(ctx context.Context, userID int64, id month.ID) (month.Record, error)
	SetCurrent(ctx context.Context, userID int64, id month.ID) (month.Record, error)
	CurrentMonth(ctx context.Context, userID int64) (month.ID, bool, error)
	MonthIDs(ctx context.Context, userID int64) ([]month.ID, error)
	LockCurrent(ctx context.Context, userID int64) error
	CarryForward(ctx context.Context, userID int64, from month.ID) (month.ID, error)
	AddIncome(ctx context.Context, userID int64, id month.ID, name string, amount float64) error
	EditIncome(ctx context.Context, userID int64, id month.ID, index int, name string, amount float64) error
	DeleteIncome(ctx context.Context, userID int64, id month.ID, index int) error
	AddCategory(ctx context.Context, userID int64, id month.ID, name string) error
	AddExpense(ctx context.Context, userID int64, id month.ID, category, name string, amount float64) error
	EditExpense(ctx context.Context, userID int64, id month.ID, index int, name string, amount float64) error
	DeleteExpense(ctx context.Context, userID int64, id month.ID, index int) error
	SetSavings(ctx context.Context, userID int64, id month.ID, value float64) error
}

type reportCache interface {
	GetReport(userID int64, monthID string) (string, error)
	CacheReport(userID int64, monthID string, report string) error
	InvalidateReports(userID int64, monthIDs []string) error
}

type reportRequester interface {
	RequestReport(ctx context.Context, userID int64, monthID string) error
}

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	store       ledgerStore
	cache       reportCache
	requester   reportRequester
}

func newHandler(store ledgerStore, cache reportCache, requester reportRequester) *HandlerService {
	res := &HandlerService{
		handlersMap: nil,
		store:       store,
		cache:       cache,
		requester:   requester,
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, userID)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[monthCommand] = s.handleMonth
	m[nextCommand] = s.handleNext
	m[incomeCommand] = s.handleIncome
	m[editIncomeCommand] = s.handleEditIncome
	m[delIncomeCommand] = s.handleDelIncome
	m[categoryCommand] = s.handleCategory
	m[expenseCommand] = s.handleExpense
	m[editExpenseCommand] = s.handleEditExpense
	m[delExpenseCommand] = s.handleDelExpense
	m[savingsCommand] = s.handleSavings
	m[lockCommand] = s.handleLock
	m[carryCommand] = s.handleCarry
	m[listCommand] = s.handleList
	m[dashboardCommand] = s.handleDashboard
	m[reportCommand] = s.handleReport

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}

// activeMonth resolves the month the user is working on, falling back to the
// real-world current month on first contact.
func (s *HandlerService) activeMonth(ctx context.Context, userID int64) (month.ID, error) {
	id, ok, err := s.store.CurrentMonth(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "active month")
	}
	if ok {
		return id, nil
	}
	id = month.Current()
	if _, err = s.store.SetCurrent(ctx, userID, id); err != nil {
		return "", errors.Wrap(err, "active month")
	}
	return id, nil
}

func (s *HandlerService) handleMonth(ctx context.Context, arg string, userID int64) (string, error) {
	id := month.Current()
	if arg != "" {
		var err error
		id, err = month.Parse(strings.TrimSpace(arg))
		if err != nil {
			return incorrectMonthMessage, nil
		}
	}
	rec, err := s.store.SetCurrent(ctx, userID, id)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle month")
	}
	return renderDashboard(id, rec), nil
}

func (s *HandlerService) handleNext(ctx context.Context, _ string, userID int64) (string, error) {
	id, err := s.activeMonth(ctx, userID)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle next")
	}
	next := id.Next()
	rec, err := s.store.SetCurrent(ctx, userID, next)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle next")
	}
	return renderDashboard(next, rec), nil
}

func (s *HandlerService) handleIncome(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return incorrectUsageMessage, nil
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return incorrectAmountMessage, nil
	}

	id, err := s.activeMonth(ctx, userID)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle income")
	}
	return s.applyMutation(ctx, userID, id, s.store.AddIncome(ctx, userID, id, args[0], amount), "handle income")
}

func (s *HandlerService) handleEditIncome(ctx context.Context, arg string, userID int64) (string, error) {
	index, name, amount, ok := parseEditArgs(arg)
	if !ok {
		return incorrectUsageMessage, nil
	}
	id, err := s.activeMonth(ctx, userID)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle edit income")
	}
	return s.applyMutation(ctx, userID, id, s.store.EditIncome(ctx, userID, id, index, name, amount), "handle edit income")
}

func (s *HandlerService) handleDelIncome(ctx context.Context, arg string, userID int64) (string, error) {
	index, ok := parseIndex(arg)
	if !ok {
		return incorrectUsageMessage, nil
	}
	id, err := s.activeMonth(ctx, userID)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle del income")
	}
	return s.applyMutation(ctx, userID, id, s.store.DeleteIncome(ctx, userID, id, index), "handle del income")
}

func (s *HandlerService) handleCategory(ctx context.Context, arg string, userID int64) (string, error) {
	if strings.TrimSpace(arg) == "" {
		return incorrectUsageMessage, nil
	}
	id, err := s.activeMonth(ctx, userID)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle category")
	}
	return s.applyMutation(ctx, userID, id, s.store.AddCategory(ctx, userID, id, arg), "handle category")
}

func (s *HandlerService) handleExpense(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return incorrectUsageMessage, nil
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return incorrectAmountMessage, nil
	}
	name := strings.Join(args[2:], " ")

	id, err := s.activeMonth(ctx, userID)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle expense")
	}
	return s.applyMutation(ctx, userID, id, s.store.AddExpense(ctx, userID, id, args[0], name, amount), "handle expense")
}

func (s *HandlerService) handleEditExpense(ctx context.Context, arg string, userID int64) (string, error) {
	index, name, amount, ok := parseEditArgs(arg)
	if !ok {
		return incorrectUsageMessage, nil
	}
	id, err := s.activeMonth(ctx, userID)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle edit expense")
	}
	return s.applyMutation(ctx, userID, id, s.store.EditExpense(ctx, userID, id, index, name, amount), "handle edit expense")
}

func (s *HandlerService) handleDelExpense(ctx context.Context, arg string, userID int64) (string, error) {
	index, ok := parseIndex(arg)
	if !ok {
		return incorrectUsageMessage, nil
	}
	id, err := s.activeMonth(ctx, userID)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle del expense")
	}
	return s.applyMutation(ctx, userID, id, s.store.DeleteExpense(ctx, userID, id, index), "handle del expense")
}

func (s *HandlerService) handleSavings(ctx context.Context, arg string, userID int64) (string, error) {
	// unparsable input falls back to zero, the same laxity the savings
	// form had
	amount, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		amount = 0
	}
	id, err := s.activeMonth(ctx, userID)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle savings")
	}
	return s.applyMutation(ctx, userID, id, s.store.SetSavings(ctx, userID, id, amount), "handle savings")
}

func (s *HandlerService) handleLock(ctx context.Context, _ string, userID int64) (string, error) {
	if _, err := s.activeMonth(ctx, userID); err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle lock")
	}
	if err := s.store.LockCurrent(ctx, userID); err != nil {
		return cannotSaveMessage, errors.Wrap(err, "handle lock")
	}
	return monthLockedNowMessage, nil
}

func (s *HandlerService) handleCarry(ctx context.Context, _ string, userID int64) (string, error) {
	id, err := s.activeMonth(ctx, userID)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle carry")
	}
	next, err := s.store.CarryForward(ctx, userID, id)
	if err != nil {
		return cannotSaveMessage, errors.Wrap(err, "handle carry")
	}
	s.invalidateReport(userID, next)
	rec, err := s.store.SetCurrent(ctx, userID, next)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle carry")
	}
	return renderDashboard(next, rec), nil
}

func (s *HandlerService) handleList(ctx context.Context, _ string, userID int64) (string, error) {
	id, err := s.activeMonth(ctx, userID)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle list")
	}
	rec, err := s.store.EnsureMonth(ctx, userID, id)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle list")
	}
	return renderLedgers(id, rec), nil
}

func (s *HandlerService) handleDashboard(ctx context.Context, _ string, userID int64) (string, error) {
	id, err := s.activeMonth(ctx, userID)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle dashboard")
	}
	rec, err := s.store.EnsureMonth(ctx, userID, id)
	if err != nil {
		return cannotGetMonthMessage, errors.Wrap(err, "handle dashboard")
	}
	return renderDashboard(id, rec), nil
}

func (s *HandlerService) handleReport(ctx context.Context, arg string, userID int64) (string, error) {
	var id month.ID
	var err error
	if arg != "" {
		id, err = month.Parse(strings.TrimSpace(arg))
		if err != nil {
			return incorrectMonthMessage, nil
		}
	} else {
		id, err = s.activeMonth(ctx, userID)
		if err != nil {
			return cannotGetMonthMessage, errors.Wrap(err, "handle report")
		}
	}

	if cached, cacheErr := s.cache.GetReport(userID, id.String()); cacheErr == nil {
		return cached, nil
	}

	if err = s.requester.RequestReport(ctx, userID, id.String()); err != nil {
		return cannotReportMessage, errors.Wrap(err, "handle report")
	}
	return preparingReportMsg, nil
}

// applyMutation maps the store's recoverable error kinds to user-facing
// notices and invalidates the month's cached report on success.
func (s *HandlerService) applyMutation(_ context.Context, userID int64, id month.ID, err error, wrap string) (string, error) {
	if err == nil {
		s.invalidateReport(userID, id)
		return okMessage, nil
	}

	var locked *customerr.LockedMonthError
	var invalid *customerr.InvalidInputError
	var index *customerr.IndexError
	switch {
	case errors.As(err, &locked):
		return lockedMonthMessage, nil
	case errors.As(err, &invalid):
		return incorrectInputMessage + ": " + invalid.Err, nil
	case errors.As(err, &index):
		return incorrectIndexMessage, nil
	}
	return cannotSaveMessage, errors.Wrap(err, wrap)
}

func (s *HandlerService) invalidateReport(userID int64, id month.ID) {
	_ = s.cache.InvalidateReports(userID, []string{id.String()})
}

func parseIndex(arg string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, false
	}
	// ledgers render 1-based
	return n - 1, true
}

func parseEditArgs(arg string) (index int, name string, amount float64, ok bool) {
	args := strings.Fields(arg)
	if len(args) < 3 {
		return 0, "", 0, false
	}
	index, ok = parseIndex(args[0])
	if !ok {
		return 0, "", 0, false
	}
	amount, err := strconv.ParseFloat(args[len(args)-1], 64)
	if err != nil {
		return 0, "", 0, false
	}
	name = strings.Join(args[1:len(args)-1], " ")
	return index, name, amount, true
}
