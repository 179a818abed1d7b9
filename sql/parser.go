package sql

import (
	"fmt"
	"strconv"
	"strings"
)

// Parser parses SQL token streams into an AST. A Parser holds only
// per-invocation state; use a fresh one per query (Parse does).
type Parser struct {
	tokens       []Token
	pos          int
	depthCounter *ExpressionDepthCounter
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:       tokens,
		pos:          0,
		depthCounter: NewExpressionDepthCounter(),
	}
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// peek returns the next token without advancing
func (p *Parser) peek() Token {
	if p.pos+1 >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos+1]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// expect checks if current token matches expected type and advances
func (p *Parser) expect(tokType TokenType) error {
	if p.current().Type != tokType {
		return newSyntaxError(p.current(), tokType.String())
	}
	p.advance()
	return nil
}

// Parse parses a SQL query string into an AST. On grammar mismatch the
// returned error wraps a *SyntaxError carrying the offending position.
func Parse(query string) (*Query, error) {
	// Validate query length
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}

	tokens := Tokenize(query)

	// Validate token count
	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}

	parser := NewParser(tokens)
	q, err := parser.parseQuery()
	if err != nil {
		return nil, err
	}

	// Validate that we consumed all tokens (should be at EOF)
	if parser.current().Type == TokenError {
		return nil, newSyntaxError(parser.current(), "valid token")
	}
	if parser.current().Type != TokenEOF {
		return nil, newSyntaxError(parser.current(), "end of query")
	}

	return q, nil
}

// parseQuery parses: [WITH cte AS (...)] SELECT col1, col2, ... FROM table [joins] [clauses]
func (p *Parser) parseQuery() (*Query, error) {
	var ctes []CTE

	// Parse WITH clause (optional)
	if p.current().Type == TokenWith {
		var err error
		ctes, err = p.parseWithClause()
		if err != nil {
			return nil, err
		}
	}

	// Parse SELECT
	if err := p.expect(TokenSelect); err != nil {
		return nil, fmt.Errorf("query must start with SELECT (or WITH): %w", err)
	}

	// Check for DISTINCT
	distinct := false
	if p.current().Type == TokenDistinct {
		distinct = true
		p.advance()
	}

	// Parse SELECT list
	selectList, err := p.parseSelectList()
	if err != nil {
		return nil, fmt.Errorf("failed to parse SELECT list: %w", err)
	}

	// Parse FROM
	if err := p.expect(TokenFrom); err != nil {
		return nil, fmt.Errorf("expected FROM after SELECT list: %w", err)
	}

	// Initialize query
	q := &Query{
		CTEs:       ctes,
		SelectList: selectList,
		Distinct:   distinct,
	}

	// Parse FROM source (table name, subquery, or CTE reference)
	if p.current().Type == TokenLeftParen {
		// Subquery in FROM clause
		p.advance() // consume (
		subquery, err := p.parseQuery()
		if err != nil {
			return nil, fmt.Errorf("failed to parse subquery in FROM: %w", err)
		}
		if err := p.expect(TokenRightParen); err != nil {
			return nil, fmt.Errorf("expected ) after subquery: %w", err)
		}
		q.Subquery = subquery
		q.TableAlias = p.parseOptionalAlias()
	} else {
		// Table name or CTE reference (may include glob patterns like 'data/*.parquet')
		if p.current().Type != TokenIdent && p.current().Type != TokenString {
			return nil, newSyntaxError(p.current(), "table name or subquery after FROM")
		}
		tableName := p.current().Value
		p.advance()

		// Validate table name (unless it's a CTE reference)
		if !isCTEName(ctes, tableName) {
			if err := ValidateTableName(tableName); err != nil {
				return nil, err
			}
		}

		q.TableName = tableName
		q.TableAlias = p.parseOptionalAlias()
	}

	// Parse JOIN clauses (optional, can be multiple)
	for p.atJoinClause() {
		join, err := p.parseJoin(ctes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse JOIN: %w", err)
		}
		q.Joins = append(q.Joins, *join)
	}

	// Parse WHERE clause (optional)
	if p.current().Type == TokenWhere {
		p.advance()
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		q.Filter = expr
	}

	// Parse GROUP BY clause (optional)
	if p.current().Type == TokenGroup {
		groupBy, err := p.parseGroupBy()
		if err != nil {
			return nil, err
		}
		q.GroupBy = groupBy
	}

	// Parse HAVING clause (optional, only valid with GROUP BY)
	if p.current().Type == TokenHaving {
		if len(q.GroupBy) == 0 {
			return nil, newSyntaxError(p.current(), "GROUP BY before HAVING")
		}
		p.advance()
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		q.Having = expr
	}

	// Parse ORDER BY clause (optional)
	if p.current().Type == TokenOrder {
		orderBy, err := p.parseOrderBy()
		if err != nil {
			return nil, err
		}
		q.OrderBy = orderBy
	}

	// Parse LIMIT clause (optional)
	if p.current().Type == TokenLimit {
		limit, err := p.parseLimit()
		if err != nil {
			return nil, err
		}
		q.Limit = limit
	}

	// Parse OFFSET clause (optional)
	if p.current().Type == TokenOffset {
		offset, err := p.parseOffset()
		if err != nil {
			return nil, err
		}
		q.Offset = offset
	}

	return q, nil
}

// parseOptionalAlias consumes an [AS] identifier alias if one is
// present. An identifier that begins a KNN JOIN clause is left alone:
// "knn" is a non-reserved word and only acts as a join keyword when
// directly followed by JOIN.
func (p *Parser) parseOptionalAlias() string {
	if p.current().Type == TokenAs {
		p.advance()
	}
	if p.current().Type == TokenIdent && p.current().Value != "*" && !p.atKnnJoin() {
		alias := p.current().Value
		p.advance()
		return alias
	}
	return ""
}

// atJoinClause reports whether the current token begins a JOIN clause.
func (p *Parser) atJoinClause() bool {
	switch p.current().Type {
	case TokenJoin, TokenInner, TokenLeft, TokenRight, TokenFull, TokenCross:
		return true
	}
	return p.atKnnJoin()
}

func isCTEName(ctes []CTE, name string) bool {
	for _, cte := range ctes {
		if cte.Name == name {
			return true
		}
	}
	return false
}

// parseJoin parses a JOIN clause
func (p *Parser) parseJoin(ctes []CTE) (*Join, error) {
	join := &Join{}

	// Determine join type
	switch {
	case p.current().Type == TokenCross:
		join.Type = JoinCross
		p.advance()
		if err := p.expect(TokenJoin); err != nil {
			return nil, err
		}
	case p.current().Type == TokenInner:
		join.Type = JoinInner
		p.advance()
		if err := p.expect(TokenJoin); err != nil {
			return nil, err
		}
	case p.current().Type == TokenLeft:
		join.Type = JoinLeft
		p.advance()
		// Optional OUTER keyword
		if p.current().Type == TokenOuter {
			p.advance()
		}
		if err := p.expect(TokenJoin); err != nil {
			return nil, err
		}
	case p.current().Type == TokenRight:
		join.Type = JoinRight
		p.advance()
		// Optional OUTER keyword
		if p.current().Type == TokenOuter {
			p.advance()
		}
		if err := p.expect(TokenJoin); err != nil {
			return nil, err
		}
	case p.current().Type == TokenFull:
		join.Type = JoinFull
		p.advance()
		// Optional OUTER keyword
		if p.current().Type == TokenOuter {
			p.advance()
		}
		if err := p.expect(TokenJoin); err != nil {
			return nil, err
		}
	case p.atKnnJoin():
		join.Type = JoinKNN
		p.advance() // consume the contextual KNN keyword
		if err := p.expect(TokenJoin); err != nil {
			return nil, err
		}
	case p.current().Type == TokenJoin:
		// Plain JOIN defaults to INNER JOIN
		join.Type = JoinInner
		p.advance()
	default:
		return nil, newSyntaxError(p.current(), "JOIN")
	}

	// Parse joined table or subquery
	if p.current().Type == TokenLeftParen {
		// Subquery
		p.advance() // consume (
		subquery, err := p.parseQuery()
		if err != nil {
			return nil, fmt.Errorf("failed to parse subquery in JOIN: %w", err)
		}
		if err := p.expect(TokenRightParen); err != nil {
			return nil, fmt.Errorf("expected ) after subquery: %w", err)
		}
		join.Subquery = subquery
		join.Alias = p.parseOptionalAlias()
	} else {
		// Table name or CTE reference
		if p.current().Type != TokenIdent && p.current().Type != TokenString {
			return nil, newSyntaxError(p.current(), "table name or subquery after JOIN")
		}
		tableName := p.current().Value
		p.advance()

		if !isCTEName(ctes, tableName) {
			if err := ValidateTableName(tableName); err != nil {
				return nil, err
			}
		}

		join.TableName = tableName
		join.Alias = p.parseOptionalAlias()
	}

	// Parse the join criterion. KNN joins take the spatial criterion,
	// CROSS joins take none, everything else takes ON or USING (cols).
	switch join.Type {
	case JoinKNN:
		spatial, err := p.parseSpatialCriteria()
		if err != nil {
			return nil, err
		}
		join.Spatial = spatial
	case JoinCross:
		// No criterion.
	default:
		switch p.current().Type {
		case TokenOn:
			p.advance()
			condition, err := p.parseOr()
			if err != nil {
				return nil, fmt.Errorf("failed to parse JOIN condition: %w", err)
			}
			join.Condition = condition
		case TokenUsing:
			columns, err := p.parseUsingColumns()
			if err != nil {
				return nil, err
			}
			join.Using = columns
		default:
			return nil, newSyntaxError(p.current(), "ON or USING after JOIN table")
		}
	}

	return join, nil
}

// parseUsingColumns parses USING (col1, col2, ...) for equi-joins.
func (p *Parser) parseUsingColumns() ([]string, error) {
	if err := p.expect(TokenUsing); err != nil {
		return nil, err
	}
	if err := p.expect(TokenLeftParen); err != nil {
		return nil, fmt.Errorf("expected ( after USING: %w", err)
	}

	var columns []string
	for {
		if p.current().Type != TokenIdent {
			return nil, newSyntaxError(p.current(), "column name in USING list")
		}
		column := p.current().Value
		if err := ValidateColumnName(column); err != nil {
			return nil, err
		}
		columns = append(columns, column)
		p.advance()

		if p.current().Type == TokenComma {
			p.advance()
			continue
		}
		break
	}

	if err := p.expect(TokenRightParen); err != nil {
		return nil, fmt.Errorf("expected ) after USING list: %w", err)
	}
	return columns, nil
}

// parseSelectList parses the SELECT list (columns, expressions, aliases)
func (p *Parser) parseSelectList() ([]SelectItem, error) {
	var items []SelectItem

	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		// Check for comma (more items)
		if p.current().Type == TokenComma {
			p.advance()
			continue
		}

		// No comma, we're done with the SELECT list
		break
	}

	return items, nil
}

// parseSelectItem parses a single SELECT item (column, function, or expression with optional alias)
func (p *Parser) parseSelectItem() (SelectItem, error) {
	var item SelectItem

	// Parse the expression (column or function call)
	expr, err := p.parseSelectExpression()
	if err != nil {
		return item, err
	}
	item.Expr = expr

	// Check for AS alias
	if p.current().Type == TokenAs {
		p.advance()
		if p.current().Type != TokenIdent {
			return item, newSyntaxError(p.current(), "alias name after AS")
		}
		item.Alias = p.current().Value
		p.advance()
	} else if p.current().Type == TokenIdent && p.current().Value != "*" {
		// Implicit alias (column name without AS)
		item.Alias = p.current().Value
		p.advance()
	}

	return item, nil
}

// parseSelectExpression parses a select expression (column reference, function call, literal, CASE, or subquery)
func (p *Parser) parseSelectExpression() (SelectExpression, error) {
	// Check for CASE expression
	if p.current().Type == TokenCase {
		return p.parseCaseExpression()
	}

	// Check for scalar subquery (starts with opening paren)
	if p.current().Type == TokenLeftParen {
		// Look ahead to see if it's a subquery (SELECT or WITH)
		next := p.peek()
		if next.Type == TokenSelect || next.Type == TokenWith {
			return p.parseScalarSubquery()
		}
	}

	// Check for aggregate or regular function call (identifier followed by left paren)
	if p.current().Type == TokenIdent && p.peek().Type == TokenLeftParen {
		if isAggregateFunction(p.current().Value) {
			return p.parseAggregateFunction()
		}
		return p.parseFunctionCall()
	}

	// Check for literals (numbers, strings, bools)
	switch p.current().Type {
	case TokenNumber:
		value, err := parseNumberValue(p.current())
		if err != nil {
			return nil, err
		}
		p.advance()
		return &LiteralExpr{Value: value}, nil
	case TokenString:
		str := p.current().Value
		p.advance()
		return &LiteralExpr{Value: str}, nil
	case TokenBool:
		b := strings.EqualFold(p.current().Value, "true")
		p.advance()
		return &LiteralExpr{Value: b}, nil
	}

	// Otherwise, it's a column reference
	if p.current().Type != TokenIdent {
		return nil, newSyntaxError(p.current(), "column name, literal, or function call")
	}

	column := p.current().Value
	p.advance()

	return &ColumnRef{Column: column}, nil
}

// parseFunctionCall parses a function call
func (p *Parser) parseFunctionCall() (SelectExpression, error) {
	funcName := p.current().Value
	p.advance() // skip function name

	if err := p.expect(TokenLeftParen); err != nil {
		return nil, fmt.Errorf("expected '(' after function name: %w", err)
	}

	var args []SelectExpression

	// Check for empty argument list
	if p.current().Type == TokenRightParen {
		p.advance()
		return &FunctionCall{Name: funcName, Args: args}, nil
	}

	// Parse arguments
	for {
		arg, err := p.parseSelectExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.current().Type == TokenComma {
			p.advance()
			continue
		}

		break
	}

	if err := p.expect(TokenRightParen); err != nil {
		return nil, fmt.Errorf("expected ')' after function arguments: %w", err)
	}

	return &FunctionCall{Name: funcName, Args: args}, nil
}

// isAggregateFunction checks if a function name is an aggregate function
func isAggregateFunction(name string) bool {
	aggregates := map[string]bool{
		"COUNT": true,
		"SUM":   true,
		"AVG":   true,
		"MIN":   true,
		"MAX":   true,
	}
	return aggregates[strings.ToUpper(name)]
}

// parseAggregateFunction parses an aggregate function call
func (p *Parser) parseAggregateFunction() (SelectExpression, error) {
	funcName := strings.ToUpper(p.current().Value)
	p.advance() // skip function name

	if err := p.expect(TokenLeftParen); err != nil {
		return nil, fmt.Errorf("expected '(' after aggregate function: %w", err)
	}

	var arg SelectExpression
	distinct := false

	// Check for COUNT(*)
	if funcName == "COUNT" && p.current().Type == TokenIdent && p.current().Value == "*" {
		p.advance()
		arg = nil // COUNT(*) has no argument
	} else {
		if p.current().Type == TokenDistinct {
			distinct = true
			p.advance()
		}
		argExpr, err := p.parseSelectExpression()
		if err != nil {
			return nil, fmt.Errorf("failed to parse aggregate function argument: %w", err)
		}
		arg = argExpr
	}

	// MIN/MAX with multiple arguments is the scalar function form
	if (funcName == "MIN" || funcName == "MAX") && p.current().Type == TokenComma {
		args := []SelectExpression{arg}
		for p.current().Type == TokenComma {
			p.advance() // skip comma
			nextArg, err := p.parseSelectExpression()
			if err != nil {
				return nil, fmt.Errorf("failed to parse function argument: %w", err)
			}
			args = append(args, nextArg)
		}

		if err := p.expect(TokenRightParen); err != nil {
			return nil, fmt.Errorf("expected ')' after function arguments: %w", err)
		}

		return &FunctionCall{Name: funcName, Args: args}, nil
	}

	if err := p.expect(TokenRightParen); err != nil {
		return nil, fmt.Errorf("expected ')' after aggregate function argument: %w", err)
	}

	return &AggregateExpr{
		Function: funcName,
		Arg:      arg,
		Distinct: distinct,
	}, nil
}

// parseCaseExpression parses a CASE expression
func (p *Parser) parseCaseExpression() (SelectExpression, error) {
	if err := p.expect(TokenCase); err != nil {
		return nil, err
	}

	var whenClauses []WhenClause

	// Parse WHEN clauses
	for p.current().Type == TokenWhen {
		p.advance() // skip WHEN

		// Parse the condition (a WHERE-like expression with AND/OR support)
		condition, err := p.parseOr()
		if err != nil {
			return nil, fmt.Errorf("failed to parse CASE WHEN condition: %w", err)
		}

		if err := p.expect(TokenThen); err != nil {
			return nil, fmt.Errorf("expected THEN after WHEN condition: %w", err)
		}

		result, err := p.parseSelectExpression()
		if err != nil {
			return nil, fmt.Errorf("failed to parse CASE THEN result: %w", err)
		}

		whenClauses = append(whenClauses, WhenClause{
			Condition: condition,
			Result:    result,
		})
	}

	if len(whenClauses) == 0 {
		return nil, newSyntaxError(p.current(), "WHEN clause in CASE expression")
	}

	// Parse optional ELSE clause
	var elseExpr SelectExpression
	if p.current().Type == TokenElse {
		p.advance() // skip ELSE

		var err error
		elseExpr, err = p.parseSelectExpression()
		if err != nil {
			return nil, fmt.Errorf("failed to parse CASE ELSE result: %w", err)
		}
	}

	if err := p.expect(TokenEnd); err != nil {
		return nil, fmt.Errorf("expected END after CASE expression: %w", err)
	}

	return &CaseExpr{
		WhenClauses: whenClauses,
		ElseExpr:    elseExpr,
	}, nil
}

// parseGroupBy parses the GROUP BY clause
func (p *Parser) parseGroupBy() ([]string, error) {
	if err := p.expect(TokenGroup); err != nil {
		return nil, err
	}
	if err := p.expect(TokenBy); err != nil {
		return nil, fmt.Errorf("expected BY after GROUP: %w", err)
	}

	var columns []string

	// Parse column list
	for {
		if p.current().Type != TokenIdent {
			return nil, newSyntaxError(p.current(), "column name in GROUP BY")
		}

		column := p.current().Value
		if err := ValidateColumnName(column); err != nil {
			return nil, err
		}

		columns = append(columns, column)
		p.advance()

		// Check for comma (more columns)
		if p.current().Type == TokenComma {
			p.advance()
			continue
		}

		break
	}

	return columns, nil
}

// parseOrderBy parses the ORDER BY clause
func (p *Parser) parseOrderBy() ([]OrderByItem, error) {
	if err := p.expect(TokenOrder); err != nil {
		return nil, err
	}
	if err := p.expect(TokenBy); err != nil {
		return nil, fmt.Errorf("expected BY after ORDER: %w", err)
	}

	var items []OrderByItem

	// Parse column list
	for {
		if p.current().Type != TokenIdent {
			return nil, newSyntaxError(p.current(), "column name in ORDER BY")
		}

		column := p.current().Value
		if err := ValidateColumnName(column); err != nil {
			return nil, err
		}

		item := OrderByItem{
			Column: column,
			Desc:   false, // Default to ASC
		}
		p.advance()

		// Check for ASC/DESC modifier
		if p.current().Type == TokenAsc {
			item.Desc = false
			p.advance()
		} else if p.current().Type == TokenDesc {
			item.Desc = true
			p.advance()
		}

		items = append(items, item)

		// Check for comma (more columns)
		if p.current().Type == TokenComma {
			p.advance()
			continue
		}

		break
	}

	return items, nil
}

// parseLimit parses the LIMIT clause
func (p *Parser) parseLimit() (*int64, error) {
	if err := p.expect(TokenLimit); err != nil {
		return nil, err
	}

	if p.current().Type != TokenNumber {
		return nil, newSyntaxError(p.current(), "number after LIMIT")
	}

	limit, err := strconv.ParseInt(p.current().Value, 10, 64)
	if err != nil {
		return nil, newSyntaxError(p.current(), "integer LIMIT value")
	}
	if limit < 0 {
		return nil, newSyntaxError(p.current(), "non-negative LIMIT value")
	}

	p.advance()
	return &limit, nil
}

// parseOffset parses the OFFSET clause
func (p *Parser) parseOffset() (*int64, error) {
	if err := p.expect(TokenOffset); err != nil {
		return nil, err
	}

	if p.current().Type != TokenNumber {
		return nil, newSyntaxError(p.current(), "number after OFFSET")
	}

	offset, err := strconv.ParseInt(p.current().Value, 10, 64)
	if err != nil {
		return nil, newSyntaxError(p.current(), "integer OFFSET value")
	}
	if offset < 0 {
		return nil, newSyntaxError(p.current(), "non-negative OFFSET value")
	}

	p.advance()
	return &offset, nil
}

// parseScalarSubquery parses a scalar subquery in SELECT clause
func (p *Parser) parseScalarSubquery() (SelectExpression, error) {
	if err := p.expect(TokenLeftParen); err != nil {
		return nil, fmt.Errorf("expected '(' for scalar subquery: %w", err)
	}

	subquery, err := p.parseQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to parse scalar subquery: %w", err)
	}

	if err := validateSingleColumnSubquery(subquery, "scalar subquery"); err != nil {
		return nil, err
	}

	if err := p.expect(TokenRightParen); err != nil {
		return nil, fmt.Errorf("expected ')' after scalar subquery: %w", err)
	}

	return &ScalarSubqueryExpr{
		Query: subquery,
	}, nil
}

// validateSingleColumnSubquery checks that a subquery used in value
// position selects exactly one column.
func validateSingleColumnSubquery(subquery *Query, context string) error {
	if len(subquery.SelectList) == 0 {
		return fmt.Errorf("%s must select at least one column", context)
	}
	if len(subquery.SelectList) == 1 {
		if colRef, ok := subquery.SelectList[0].Expr.(*ColumnRef); ok && colRef.Column == "*" {
			return fmt.Errorf("%s cannot use SELECT *, must select exactly one column", context)
		}
		return nil
	}
	return fmt.Errorf("%s must select exactly one column, got %d columns", context, len(subquery.SelectList))
}

// parseWithClause parses the WITH clause (Common Table Expressions)
// Syntax: WITH cte1 AS (query1), cte2 AS (query2)
func (p *Parser) parseWithClause() ([]CTE, error) {
	if err := p.expect(TokenWith); err != nil {
		return nil, err
	}

	// RECURSIVE is recognized but unsupported
	if p.current().Type == TokenRecursive {
		return nil, newSyntaxError(p.current(), "non-recursive CTE (RECURSIVE is not supported)")
	}

	var ctes []CTE

	for {
		// Parse CTE name
		if p.current().Type != TokenIdent {
			return nil, newSyntaxError(p.current(), "CTE name")
		}
		cteName := p.current().Value
		p.advance()

		if err := p.expect(TokenAs); err != nil {
			return nil, fmt.Errorf("expected AS after CTE name: %w", err)
		}

		if err := p.expect(TokenLeftParen); err != nil {
			return nil, fmt.Errorf("expected ( after AS: %w", err)
		}

		subquery, err := p.parseQuery()
		if err != nil {
			return nil, fmt.Errorf("failed to parse CTE subquery: %w", err)
		}

		if err := p.expect(TokenRightParen); err != nil {
			return nil, fmt.Errorf("expected ) after CTE subquery: %w", err)
		}

		ctes = append(ctes, CTE{
			Name:  cteName,
			Query: subquery,
		})

		// Check for comma (more CTEs)
		if p.current().Type == TokenComma {
			p.advance()
			continue
		}

		break
	}

	return ctes, nil
}

// parseNumberValue converts a number token to int64 or float64.
func parseNumberValue(tok Token) (interface{}, error) {
	if intVal, err := strconv.ParseInt(tok.Value, 10, 64); err == nil {
		return intVal, nil
	}
	if floatVal, err := strconv.ParseFloat(tok.Value, 64); err == nil {
		return floatVal, nil
	}
	return nil, newSyntaxError(tok, "numeric literal")
}
