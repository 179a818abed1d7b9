package sql

import (
	"fmt"
	"strings"
)

// parseOr parses OR expressions (lowest precedence)
func (p *Parser) parseOr() (Expression, error) {
	if err := p.depthCounter.Enter(); err != nil {
		return nil, err
	}
	defer p.depthCounter.Exit()

	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: TokenOr,
			Right:    right,
		}
	}

	return left, nil
}

// parseAnd parses AND expressions (higher precedence than OR)
func (p *Parser) parseAnd() (Expression, error) {
	if err := p.depthCounter.Enter(); err != nil {
		return nil, err
	}
	defer p.depthCounter.Exit()

	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenAnd {
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: TokenAnd,
			Right:    right,
		}
	}

	return left, nil
}

// parseComparison parses comparison expressions (including IN, LIKE, BETWEEN, IS NULL)
func (p *Parser) parseComparison() (Expression, error) {
	// Check for EXISTS (doesn't start with column)
	if p.current().Type == TokenExists || (p.current().Type == TokenNot && p.peek().Type == TokenExists) {
		return p.parseExistsExpr()
	}

	// Parse column name
	if p.current().Type != TokenIdent {
		return nil, newSyntaxError(p.current(), "column name")
	}
	column := p.current().Value

	if err := ValidateColumnName(column); err != nil {
		return nil, err
	}

	p.advance()

	// Check for special operators first
	switch p.current().Type {
	case TokenIn:
		return p.parseInExpr(column)
	case TokenNot:
		// Could be "NOT IN", "NOT LIKE", "NOT BETWEEN"
		p.advance()
		switch p.current().Type {
		case TokenIn:
			expr, err := p.parseInExpr(column)
			if err != nil {
				return nil, err
			}
			// Handle both InExpr and InSubqueryExpr
			switch e := expr.(type) {
			case *InExpr:
				e.Negate = true
			case *InSubqueryExpr:
				e.Negate = true
			}
			return expr, nil
		case TokenLike:
			expr, err := p.parseLikeExpr(column)
			if err != nil {
				return nil, err
			}
			if likeExpr, ok := expr.(*LikeExpr); ok {
				likeExpr.Negate = true
			}
			return expr, nil
		case TokenBetween:
			expr, err := p.parseBetweenExpr(column)
			if err != nil {
				return nil, err
			}
			if betweenExpr, ok := expr.(*BetweenExpr); ok {
				betweenExpr.Negate = true
			}
			return expr, nil
		default:
			return nil, newSyntaxError(p.current(), "IN, LIKE, or BETWEEN after NOT")
		}
	case TokenLike:
		return p.parseLikeExpr(column)
	case TokenBetween:
		return p.parseBetweenExpr(column)
	case TokenIs:
		return p.parseIsNullExpr(column)
	}

	// Parse standard comparison operator
	operator := p.current().Type
	switch operator {
	case TokenEqual, TokenNotEqual, TokenLess, TokenGreater, TokenLessEqual, TokenGreaterEqual:
		p.advance()
	default:
		return nil, newSyntaxError(p.current(), "comparison operator")
	}

	// Parse right side - could be a literal value or column reference
	switch p.current().Type {
	case TokenString:
		value := p.current().Value
		p.advance()
		return &ComparisonExpr{
			Column:   column,
			Operator: operator,
			Value:    value,
		}, nil
	case TokenNumber:
		value, err := parseNumberValue(p.current())
		if err != nil {
			return nil, err
		}
		p.advance()
		return &ComparisonExpr{
			Column:   column,
			Operator: operator,
			Value:    value,
		}, nil
	case TokenBool:
		value := strings.EqualFold(p.current().Value, "true")
		p.advance()
		return &ComparisonExpr{
			Column:   column,
			Operator: operator,
			Value:    value,
		}, nil
	case TokenIdent:
		// Column-to-column comparison (for JOINs)
		rightColumn := p.current().Value
		p.advance()
		return &ColumnComparisonExpr{
			LeftColumn:  column,
			Operator:    operator,
			RightColumn: rightColumn,
		}, nil
	default:
		return nil, newSyntaxError(p.current(), "value or column name")
	}
}

// parseLiteralValue parses a literal token (string, number, bool) into a Go value.
func (p *Parser) parseLiteralValue(context string) (interface{}, error) {
	switch p.current().Type {
	case TokenString:
		value := p.current().Value
		p.advance()
		return value, nil
	case TokenNumber:
		value, err := parseNumberValue(p.current())
		if err != nil {
			return nil, err
		}
		p.advance()
		return value, nil
	case TokenBool:
		value := strings.EqualFold(p.current().Value, "true")
		p.advance()
		return value, nil
	default:
		return nil, newSyntaxError(p.current(), context)
	}
}

// parseInExpr parses an IN expression: column IN (val1, val2, ...) or column IN (subquery)
func (p *Parser) parseInExpr(column string) (Expression, error) {
	if err := p.expect(TokenIn); err != nil {
		return nil, err
	}

	if err := p.expect(TokenLeftParen); err != nil {
		return nil, fmt.Errorf("expected '(' after IN: %w", err)
	}

	// Check if it's a subquery (starts with SELECT or WITH)
	if p.current().Type == TokenSelect || p.current().Type == TokenWith {
		subquery, err := p.parseQuery()
		if err != nil {
			return nil, fmt.Errorf("failed to parse IN subquery: %w", err)
		}

		if err := validateSingleColumnSubquery(subquery, "IN subquery"); err != nil {
			return nil, err
		}

		if err := p.expect(TokenRightParen); err != nil {
			return nil, fmt.Errorf("expected ')' after IN subquery: %w", err)
		}

		return &InSubqueryExpr{
			Column:   column,
			Subquery: subquery,
			Negate:   false,
		}, nil
	}

	// Parse value list
	var values []interface{}
	for {
		value, err := p.parseLiteralValue("value in IN list")
		if err != nil {
			return nil, err
		}
		values = append(values, value)

		// Check for comma (more values) or closing parenthesis
		if p.current().Type == TokenComma {
			p.advance()
			continue
		}
		if p.current().Type == TokenRightParen {
			break
		}
		return nil, newSyntaxError(p.current(), "',' or ')' in IN list")
	}

	if err := p.expect(TokenRightParen); err != nil {
		return nil, fmt.Errorf("expected ')' after IN list: %w", err)
	}

	return &InExpr{
		Column: column,
		Values: values,
		Negate: false,
	}, nil
}

// parseLikeExpr parses a LIKE expression: column LIKE 'pattern'
func (p *Parser) parseLikeExpr(column string) (Expression, error) {
	if err := p.expect(TokenLike); err != nil {
		return nil, err
	}

	if p.current().Type != TokenString {
		return nil, newSyntaxError(p.current(), "string pattern after LIKE")
	}
	pattern := p.current().Value
	p.advance()

	return &LikeExpr{
		Column:  column,
		Pattern: pattern,
		Negate:  false,
	}, nil
}

// parseBetweenExpr parses a BETWEEN expression: column BETWEEN lower AND upper
func (p *Parser) parseBetweenExpr(column string) (Expression, error) {
	if err := p.expect(TokenBetween); err != nil {
		return nil, err
	}

	lower, err := p.parseLiteralValue("value for BETWEEN lower bound")
	if err != nil {
		return nil, err
	}

	if err := p.expect(TokenAnd); err != nil {
		return nil, fmt.Errorf("expected AND in BETWEEN expression: %w", err)
	}

	upper, err := p.parseLiteralValue("value for BETWEEN upper bound")
	if err != nil {
		return nil, err
	}

	return &BetweenExpr{
		Column: column,
		Lower:  lower,
		Upper:  upper,
		Negate: false,
	}, nil
}

// parseIsNullExpr parses an IS NULL expression: column IS [NOT] NULL
func (p *Parser) parseIsNullExpr(column string) (Expression, error) {
	if err := p.expect(TokenIs); err != nil {
		return nil, err
	}

	negate := false
	if p.current().Type == TokenNot {
		negate = true
		p.advance()
	}

	if err := p.expect(TokenNull); err != nil {
		return nil, fmt.Errorf("expected NULL after IS [NOT]: %w", err)
	}

	return &IsNullExpr{
		Column: column,
		Negate: negate,
	}, nil
}

// parseExistsExpr parses an EXISTS expression: EXISTS (subquery) or NOT EXISTS (subquery)
func (p *Parser) parseExistsExpr() (Expression, error) {
	negate := false

	// Check for NOT EXISTS
	if p.current().Type == TokenNot {
		negate = true
		p.advance()
	}

	if err := p.expect(TokenExists); err != nil {
		return nil, err
	}

	if err := p.expect(TokenLeftParen); err != nil {
		return nil, fmt.Errorf("expected '(' after EXISTS: %w", err)
	}

	subquery, err := p.parseQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to parse EXISTS subquery: %w", err)
	}

	if err := p.expect(TokenRightParen); err != nil {
		return nil, fmt.Errorf("expected ')' after EXISTS subquery: %w", err)
	}

	return &ExistsExpr{
		Subquery: subquery,
		Negate:   negate,
	}, nil
}
