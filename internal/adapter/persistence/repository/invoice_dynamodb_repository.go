package repository

import (
	"context"
	"strconv"
	"time"

	"rockstar_services/internal/domain/entities"
	"rockstar_services/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"

	// invoiceIDPrefix is part of the invoice number format "INV-<n>".
	invoiceIDPrefix = "INV-"

	// invoiceCounterKey is a reserved item in the invoices table holding the
	// monotonic invoice number. List filters it out.
	invoiceCounterKey = "counter#invoices"

	// firstInvoiceNumber keeps generated numbers in the same range the
	// dashboard seed data uses.
	firstInvoiceNumber = 1000
)

type invoiceItem struct {
	ID           string `dynamodbav:"id"`
	CustomerName string `dynamodbav:"customer_name"`
	Date         string `dynamodbav:"date"`
	Amount       string `dynamodbav:"amount"`
	Status       string `dynamodbav:"status"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if inv.ID == "" {
		n, err := r.nextInvoiceNumber(ctx)
		if err != nil {
			return entities.Invoice{}, err
		}
		inv.ID = invoiceIDPrefix + strconv.FormatInt(n, 10)
	}

	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	var invoices []entities.Invoice

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("begins_with(#id, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: invoiceIDPrefix},
		},
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			invoices = append(invoices, fromInvoiceItem(it))
		}
	}
	return invoices, nil
}

// nextInvoiceNumber bumps the counter item atomically and returns the new
// value offset into the invoice number range.
func (r *InvoiceDynamoRepository) nextInvoiceNumber(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: invoiceCounterKey},
		},
		UpdateExpression: aws.String("ADD #n :one"),
		ExpressionAttributeNames: map[string]string{
			"#n": "n",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	var counter struct {
		N int64 `dynamodbav:"n"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return 0, err
	}
	return firstInvoiceNumber + counter.N - 1, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:           inv.ID,
		CustomerName: inv.CustomerName,
		Date:         inv.Date.UTC().Format(time.RFC3339Nano),
		Amount:       inv.Amount,
		Status:       string(inv.Status),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.Invoice{
		ID:           it.ID,
		CustomerName: it.CustomerName,
		Date:         date,
		Amount:       it.Amount,
		Status:       entities.InvoiceStatus(it.Status),
	}
}
