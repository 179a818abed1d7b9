package sql

import (
	"fmt"
	"strings"
)

// Spatial grammar extension.
//
// The join grammar gains one join type and one join criterion:
//
//	joinType     += KNN
//	joinCriteria += USING pointExpr knnPred ( pointExpr , intLiteral )
//	pointExpr     = POINT ( coordinate , coordinate )
//	coordinate    = columnRef | literal
//
// KNN, POINT and knnPred are non-reserved words: the lexer emits them
// as plain identifiers and they only take effect in the positions
// above, so existing queries that use them as table, column or alias
// names are unaffected.

// spatialKeyword reports whether tok is the given contextual keyword.
func spatialKeyword(tok Token, keyword string) bool {
	return tok.Type == TokenIdent && strings.EqualFold(tok.Value, keyword)
}

// atKnnJoin reports whether the current token begins a KNN JOIN clause:
// the identifier "knn" immediately followed by JOIN.
func (p *Parser) atKnnJoin() bool {
	return spatialKeyword(p.current(), "knn") && p.peek().Type == TokenJoin
}

// parseSpatialCriteria parses the criterion of a KNN join:
//
//	USING POINT(cx, cy) knnPred (POINT(qx, qy), k)
//
// The first point is the center point, the second the query point. KNN
// joins accept only this criterion; ON and USING (cols) after KNN JOIN
// are syntax errors, which keeps the extended grammar unambiguous.
func (p *Parser) parseSpatialCriteria() (*SpatialPredicate, error) {
	if p.current().Type != TokenUsing {
		return nil, newSyntaxError(p.current(), "USING with a POINT criterion after KNN JOIN")
	}
	p.advance()

	center, err := p.parsePointExpr()
	if err != nil {
		return nil, fmt.Errorf("failed to parse center point: %w", err)
	}

	if !spatialKeyword(p.current(), "knnpred") {
		return nil, newSyntaxError(p.current(), "knnPred after center point")
	}
	p.advance()

	if err := p.expect(TokenLeftParen); err != nil {
		return nil, fmt.Errorf("expected '(' after knnPred: %w", err)
	}

	query, err := p.parsePointExpr()
	if err != nil {
		return nil, fmt.Errorf("failed to parse query point: %w", err)
	}

	if err := p.expect(TokenComma); err != nil {
		return nil, fmt.Errorf("expected ',' after query point: %w", err)
	}

	if p.current().Type != TokenNumber {
		return nil, newSyntaxError(p.current(), "neighbor count literal")
	}
	kValue, err := parseNumberValue(p.current())
	if err != nil {
		return nil, err
	}
	p.advance()

	if err := p.expect(TokenRightParen); err != nil {
		return nil, fmt.Errorf("expected ')' after neighbor count: %w", err)
	}

	return &SpatialPredicate{
		Center: center,
		Query:  query,
		K:      &LiteralExpr{Value: kValue},
	}, nil
}

// parsePointExpr parses POINT(x, y).
func (p *Parser) parsePointExpr() (PointExpr, error) {
	var point PointExpr

	if !spatialKeyword(p.current(), "point") {
		return point, newSyntaxError(p.current(), "POINT")
	}
	p.advance()

	if err := p.expect(TokenLeftParen); err != nil {
		return point, fmt.Errorf("expected '(' after POINT: %w", err)
	}

	x, err := p.parseCoordinate()
	if err != nil {
		return point, err
	}

	if err := p.expect(TokenComma); err != nil {
		return point, fmt.Errorf("expected ',' between point coordinates: %w", err)
	}

	y, err := p.parseCoordinate()
	if err != nil {
		return point, err
	}

	if err := p.expect(TokenRightParen); err != nil {
		return point, fmt.Errorf("expected ')' after point coordinates: %w", err)
	}

	point.X = x
	point.Y = y
	return point, nil
}

// parseCoordinate parses a single point coordinate: a column reference
// or a literal. Whether the coordinate is numeric is checked by the
// plan builder, not here.
func (p *Parser) parseCoordinate() (SelectExpression, error) {
	switch p.current().Type {
	case TokenIdent:
		if p.current().Value == "*" {
			return nil, newSyntaxError(p.current(), "column name or literal coordinate")
		}
		column := p.current().Value
		if err := ValidateColumnName(column); err != nil {
			return nil, err
		}
		p.advance()
		return &ColumnRef{Column: column}, nil
	case TokenNumber:
		value, err := parseNumberValue(p.current())
		if err != nil {
			return nil, err
		}
		p.advance()
		return &LiteralExpr{Value: value}, nil
	case TokenString:
		value := p.current().Value
		p.advance()
		return &LiteralExpr{Value: value}, nil
	case TokenBool:
		value := strings.EqualFold(p.current().Value, "true")
		p.advance()
		return &LiteralExpr{Value: value}, nil
	default:
		return nil, newSyntaxError(p.current(), "column name or literal coordinate")
	}
}
