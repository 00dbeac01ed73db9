package messages

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/expenses-bot/internal/entity/currency"
	"max.ks1230/expenses-bot/internal/entity/expense"
	"max.ks1230/expenses-bot/internal/entity/user"
	"max.ks1230/expenses-bot/internal/logger"
	"max.ks1230/expenses-bot/internal/model/customerr"
	"max.ks1230/expenses-bot/internal/model/export"
	"max.ks1230/expenses-bot/internal/model/reports"
	"max.ks1230/expenses-bot/internal/parser"
	"max.ks1230/expenses-bot/internal/utils"
)

const dateLayout = "2006-01-02"

const maxListedExpenses = 10

const (
	helloMessage = "Hello! I am the Expenses bot 🤖\n\n" +
		"Just type an expense like \"$15 lunch at subway with card\" and I will figure it out.\n" +
		"Paste bank or payment notifications after /import to add them in bulk.\n" +
		"Other commands: /report [week|month|year], /list, /export, /currency <code>, /limit <amount>"
	dontUnderstandMessage = "I don't understand you :("
	noExpensesMessage     = "You have no expenses yet"

	noAmountMessage         = "I couldn't find an amount in that. Try something like \"$15 lunch at subway with card\""
	incorrectExpenseMessage = "Your expense amount is incorrect"
	limitExceededMessage    = "That would push you past your month limit, so I didn't save it"
	nothingImportedMessage  = "I couldn't find any transactions in that text"

	incorrectPeriodMessage   = "I can report for week, month, year or all time (no argument)"
	preparingReportMessage   = "Preparing your report, it will arrive shortly"
	incorrectCurrencyMessage = "I don't know that currency. Supported: " // currency list appended
	incorrectLimitMessage    = "The limit should be a non-negative number"

	cannotGetExpensesMessage   = "Can't get your expenses atm. Try later"
	cannotSaveExpenseMessage   = "Can't save your expense atm. Try later"
	cannotRequestReportMessage = "Can't prepare your report atm. Try later"
	cannotSaveSettingsMessage  = "Can't save your settings atm. Try later"
)

const (
	startCommand    = "/start"
	importCommand   = "/import"
	reportCommand   = "/report"
	listCommand     = "/list"
	exportCommand   = "/export"
	currencyCommand = "/currency"
	limitCommand    = "/limit"
)

type userStorage interface {
	GetUserByID(ctx context.Context, userID int64) (user.Record, error)
	SaveUserByID(ctx context.Context, userID int64, rec user.Record) error
	SaveExpense(ctx context.Context, userID int64, rec expense.Record) error
	GetUserExpenses(ctx context.Context, userID int64) ([]expense.Record, error)
}

type reportRequester interface {
	RequestReport(ctx context.Context, userID int64, period string) error
}

type reportCache interface {
	GetReport(userID int64, period string) (string, error)
	InvalidateCache(userID int64, periods []string) error
}

type config interface {
	BaseCurrency() string
}

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap  handlerMap
	storage      userStorage
	requester    reportRequester
	cache        reportCache
	baseCurrency string
}

func newHandler(storage userStorage, requester reportRequester, cache reportCache, config config) *HandlerService {
	res := &HandlerService{
		handlersMap:  nil,
		storage:      storage,
		requester:    requester,
		cache:        cache,
		baseCurrency: config.BaseCurrency(),
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

// parseCommand splits a leading /command off the rest of the message. The
// argument may span several lines: /import is followed by pasted text.
func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	idx := strings.IndexAny(text, " \n")
	if idx < 0 {
		return text, ""
	}
	return text[:idx], strings.TrimSpace(text[idx+1:])
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[importCommand] = s.handleImport
	m[reportCommand] = s.handleReport
	m[listCommand] = s.handleList
	m[exportCommand] = s.handleExport
	m[currencyCommand] = s.handleCurrency
	m[limitCommand] = s.handleLimit

	m[""] = s.handleExpenseText

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

// handleExpenseText turns one free-form phrase into a saved expense. The
// semantic parser leaves unmatched fields empty, so the defaults are
// supplied here, at the edge.
func (s *HandlerService) handleExpenseText(ctx context.Context, text string, userID int64) (string, error) {
	draft := parser.ParseSemanticInput(text)
	if draft.Amount == "" {
		return noAmountMessage, nil
	}
	amount, err := decimal.NewFromString(draft.Amount)
	if err != nil {
		return incorrectExpenseMessage, errors.Wrap(err, "handle expense")
	}
	if !amount.IsPositive() {
		return incorrectExpenseMessage, nil
	}

	category, payment := draft.Category, draft.PaymentMethod
	if category == "" {
		category = parser.LabelOther
	}
	if payment == "" {
		payment = parser.LabelOther
	}

	rec := expense.New(amount, category, draft.Description, time.Now(), payment)
	err = s.storage.SaveExpense(ctx, userID, rec)
	var limitErr *customerr.LimitError
	if errors.As(err, &limitErr) {
		return limitExceededMessage, nil
	}
	if err != nil {
		return cannotSaveExpenseMessage, errors.Wrap(err, "handle expense")
	}

	s.invalidateReports(userID)
	return fmt.Sprintf("Gotcha! %s %s — %s (%s, %s)",
		amount.String(), s.baseCurrency, rec.Description, category, payment), nil
}

// handleImport bulk-parses pasted bank or payment notification text, one
// candidate transaction per line.
func (s *HandlerService) handleImport(ctx context.Context, arg string, userID int64) (string, error) {
	records := parser.ParseTransactionText(arg)
	if len(records) == 0 {
		return nothingImportedMessage, nil
	}

	saved, rejected := 0, 0
	for _, rec := range records {
		amount, err := decimal.NewFromString(rec.Amount)
		if err != nil {
			return cannotSaveExpenseMessage, errors.Wrap(err, "handle import")
		}
		date, err := time.Parse(dateLayout, rec.Date)
		if err != nil {
			date = time.Now()
		}

		exp := expense.New(amount, rec.Category, rec.Description, date, rec.PaymentMethod)
		err = s.storage.SaveExpense(ctx, userID, exp)
		var limitErr *customerr.LimitError
		if errors.As(err, &limitErr) {
			rejected++
			continue
		}
		if err != nil {
			return cannotSaveExpenseMessage, errors.Wrap(err, "handle import")
		}
		saved++
	}

	observeImported(saved)
	s.invalidateReports(userID)

	resp := fmt.Sprintf("Imported %d expense(s)", saved)
	if rejected > 0 {
		resp += fmt.Sprintf("\n%d rejected by your month limit", rejected)
	}
	return resp, nil
}

func (s *HandlerService) handleReport(ctx context.Context, arg string, userID int64) (string, error) {
	period := strings.TrimSpace(arg)
	if !utils.Contains(reports.Periods(), period) {
		return incorrectPeriodMessage, nil
	}

	if cached, err := s.cache.GetReport(userID, period); err == nil {
		return cached, nil
	}

	if err := s.requester.RequestReport(ctx, userID, period); err != nil {
		return cannotRequestReportMessage, errors.Wrap(err, "handle report")
	}
	return preparingReportMessage, nil
}

func (s *HandlerService) handleList(ctx context.Context, _ string, userID int64) (string, error) {
	expenses, err := s.storage.GetUserExpenses(ctx, userID)
	if err != nil {
		return cannotGetExpensesMessage, errors.Wrap(err, "handle list")
	}
	if len(expenses) == 0 {
		return noExpensesMessage, nil
	}

	if len(expenses) > maxListedExpenses {
		expenses = expenses[:maxListedExpenses]
	}
	res := make([]string, 0, len(expenses)+1)
	res = append(res, fmt.Sprintf("Your recent expenses (amounts in %s):", s.baseCurrency))
	for _, e := range expenses {
		res = append(res, fmt.Sprintf("%s | %s | %s — %s (%s)",
			e.Date.Format(dateLayout), e.Category, e.Description,
			e.Amount.StringFixed(2), e.PaymentMethod))
	}
	return strings.Join(res, "\n"), nil
}

func (s *HandlerService) handleExport(ctx context.Context, _ string, userID int64) (string, error) {
	expenses, err := s.storage.GetUserExpenses(ctx, userID)
	if err != nil {
		return cannotGetExpensesMessage, errors.Wrap(err, "handle export")
	}
	if len(expenses) == 0 {
		return noExpensesMessage, nil
	}

	csv, err := export.CSV(expenses)
	if err != nil {
		return cannotGetExpensesMessage, errors.Wrap(err, "handle export")
	}
	return csv, nil
}

func (s *HandlerService) handleCurrency(ctx context.Context, arg string, userID int64) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(arg))
	if !utils.Contains(currency.Currencies, code) {
		return incorrectCurrencyMessage + strings.Join(currency.Currencies, ", "), nil
	}

	rec, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return cannotSaveSettingsMessage, errors.Wrap(err, "handle currency")
	}
	rec.SetPreferredCurrency(code)
	if err = s.storage.SaveUserByID(ctx, userID, rec); err != nil {
		return cannotSaveSettingsMessage, errors.Wrap(err, "handle currency")
	}

	// cached reports are rendered in the old currency
	s.invalidateReports(userID)
	return fmt.Sprintf("Your reports will now be in %s", code), nil
}

func (s *HandlerService) handleLimit(ctx context.Context, arg string, userID int64) (string, error) {
	limit, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil || limit < 0 {
		return incorrectLimitMessage, nil
	}

	rec, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		return cannotSaveSettingsMessage, errors.Wrap(err, "handle limit")
	}
	rec.MonthLimit = limit
	if err = s.storage.SaveUserByID(ctx, userID, rec); err != nil {
		return cannotSaveSettingsMessage, errors.Wrap(err, "handle limit")
	}

	if limit == 0 {
		return "Month limit removed", nil
	}
	return fmt.Sprintf("Month limit set to %.2f %s", limit, s.baseCurrency), nil
}

func (s *HandlerService) invalidateReports(userID int64) {
	if err := s.cache.InvalidateCache(userID, reports.Periods()); err != nil {
		logger.Error("failed to invalidate report cache", zap.Error(err), zap.Int64("userID", userID))
	}
}
