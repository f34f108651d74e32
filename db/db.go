package db

import (
	"sort"
	"strconv"

	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/registry"
	"github.com/pkg/errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

type Item = map[string]*dynamodb.AttributeValue

// ScaleTable is a scale source backed by a DynamoDB table with items
// {PK: name, Mask: "0:2:4:...", Position: n}. Position keeps the order a
// file would have; items without one go last.
type ScaleTable struct {
	Table  string
	client *dynamodb.DynamoDB
}

func NewScaleTable(table string, endpoint string, region string) (*ScaleTable, error) {
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return &ScaleTable{Table: table, client: dynamodb.New(session)}, nil
}

func (t *ScaleTable) LoadScales() ([]model.ScaleShape, error) {
	var items []Item
	input := &dynamodb.ScanInput{TableName: aws.String(t.Table)}
	err := t.client.ScanPages(input, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		items = append(items, page.Items...)
		return true
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not scan %v", t.Table)
	}
	return ItemsToScales(items)
}

type positioned struct {
	position int64
	shape    model.ScaleShape
}

// ItemsToScales parses scan results with the same rules as the scales file.
func ItemsToScales(items []Item) ([]model.ScaleShape, error) {
	var all []positioned
	for i, v := range items {
		if v["PK"] == nil || v["PK"].S == nil {
			return nil, errors.Errorf("item %d has no PK", i)
		}
		name := *v["PK"].S

		line := name
		if v["Mask"] != nil && v["Mask"].S != nil && *v["Mask"].S != "" {
			line += registry.FieldSeparator + *v["Mask"].S
		}
		p, err := registry.ParseRecord(line)
		if err != nil {
			return nil, errors.Wrapf(err, "item %q", name)
		}

		position := int64(len(items)) + int64(i)
		if v["Position"] != nil && v["Position"].N != nil {
			position, err = strconv.ParseInt(*v["Position"].N, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "item %q has a bad Position", name)
			}
		}
		all = append(all, positioned{position: position, shape: model.ScaleShape{IntervalPattern: p}})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].position < all[j].position
	})

	res := make([]model.ScaleShape, 0, len(all))
	for _, p := range all {
		res = append(res, p.shape)
	}
	return res, nil
}
