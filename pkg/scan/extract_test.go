package scan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 11, 28, 22, 30, 0, 0, time.UTC)

func TestExtractAmount(t *testing.T) {
	t.Run("total label with comma", func(t *testing.T) {
		amount, detail := extractAmount("合計: ¥12,345")
		require.NotNil(t, amount)
		assert.Equal(t, 12345, *amount)
		assert.Equal(t, "合計: ¥12,345", detail.RawMatch)
	})

	t.Run("total label beats bare yen", func(t *testing.T) {
		amount, _ := extractAmount("¥500\n合計: ¥8,000")
		require.NotNil(t, amount)
		assert.Equal(t, 8000, *amount)
	})

	t.Run("yen suffix", func(t *testing.T) {
		amount, _ := extractAmount("お支払い 3500円")
		require.NotNil(t, amount)
		assert.Equal(t, 3500, *amount)
	})

	t.Run("english total", func(t *testing.T) {
		amount, _ := extractAmount("TOTAL: 9800")
		require.NotNil(t, amount)
		assert.Equal(t, 9800, *amount)
	})

	t.Run("zero total kept", func(t *testing.T) {
		amount, _ := extractAmount("合計: ¥0")
		require.NotNil(t, amount)
		assert.Equal(t, 0, *amount)
	})

	t.Run("no amount", func(t *testing.T) {
		amount, detail := extractAmount("ありがとうございました")
		assert.Nil(t, amount)
		assert.Nil(t, detail)
	})
}

func TestExtractDate(t *testing.T) {
	t.Run("japanese full date", func(t *testing.T) {
		date, detail := extractDate("2024年11月28日", fixedNow)
		assert.Equal(t, "2024-11-28", date)
		require.NotNil(t, detail)
	})

	t.Run("slash date", func(t *testing.T) {
		date, _ := extractDate("2024/1/5", fixedNow)
		assert.Equal(t, "2024-01-05", date)
	})

	t.Run("month day only uses current year", func(t *testing.T) {
		date, _ := extractDate("11月28日", fixedNow)
		assert.Equal(t, "2024-11-28", date)
	})

	t.Run("two digit year", func(t *testing.T) {
		date, _ := extractDate("24.11.28", fixedNow)
		assert.Equal(t, "2024-11-28", date)
	})

	t.Run("defaults to today without a match", func(t *testing.T) {
		date, detail := extractDate("領収書", fixedNow)
		assert.Equal(t, "2024-11-28", date)
		assert.Nil(t, detail)
	})

	t.Run("impossible date falls through", func(t *testing.T) {
		date, detail := extractDate("2024年13月45日", fixedNow)
		assert.Equal(t, fixedNow.Format("2006-01-02"), date)
		assert.Nil(t, detail)
	})
}

func TestExtractCustomer(t *testing.T) {
	t.Run("honorific suffix normalized", func(t *testing.T) {
		name, detail := extractCustomer("田中様")
		assert.Equal(t, "田中様", name)
		require.NotNil(t, detail)
	})

	t.Run("labeled name gets honorific", func(t *testing.T) {
		name, _ := extractCustomer("お客様: 佐藤")
		assert.Equal(t, "佐藤様", name)
	})

	t.Run("cast label", func(t *testing.T) {
		name, _ := extractCustomer("指名: 花子")
		assert.Equal(t, "花子様", name)
	})

	t.Run("overlong names rejected", func(t *testing.T) {
		name, _ := extractCustomer("Name: abcdefghijklmnopqrstuvwxyz")
		assert.Empty(t, name)
	})
}

func TestExtractDrinks(t *testing.T) {
	t.Run("label with count", func(t *testing.T) {
		count, _ := extractDrinks("ドリンク 8杯")
		require.NotNil(t, count)
		assert.Equal(t, 8, *count)
	})

	t.Run("cup suffix", func(t *testing.T) {
		count, _ := extractDrinks("12杯")
		require.NotNil(t, count)
		assert.Equal(t, 12, *count)
	})

	t.Run("out of range rejected", func(t *testing.T) {
		count, _ := extractDrinks("150杯")
		assert.Nil(t, count)
	})
}

func TestExtractChampagne(t *testing.T) {
	t.Run("brand substring", func(t *testing.T) {
		name, detail := extractChampagne("本日はドンペリニヨンをご注文いただきました")
		assert.Equal(t, "ドンペリニヨン", name)
		require.NotNil(t, detail)
	})

	t.Run("labeled bottle", func(t *testing.T) {
		name, _ := extractChampagne("シャンパン: ロゼスペシャル")
		assert.Equal(t, "ロゼスペシャル", name)
	})

	t.Run("none", func(t *testing.T) {
		name, _ := extractChampagne("ビール 2杯")
		assert.Empty(t, name)
	})
}

func TestExtractPayment(t *testing.T) {
	t.Run("labeled cash wins over card keyword", func(t *testing.T) {
		isCard, _ := extractPayment("支払: 現金 (カード可)")
		require.NotNil(t, isCard)
		assert.False(t, *isCard)
	})

	t.Run("card keyword", func(t *testing.T) {
		isCard, _ := extractPayment("VISAカードでのお支払い")
		require.NotNil(t, isCard)
		assert.True(t, *isCard)
	})

	t.Run("card wins when both keywords appear", func(t *testing.T) {
		isCard, _ := extractPayment("現金またはカードをご利用いただけます")
		require.NotNil(t, isCard)
		assert.True(t, *isCard)
	})

	t.Run("cash keyword", func(t *testing.T) {
		isCard, _ := extractPayment("現金でお預かりしました")
		require.NotNil(t, isCard)
		assert.False(t, *isCard)
	})

	t.Run("unknown", func(t *testing.T) {
		isCard, _ := extractPayment("ありがとうございました")
		assert.Nil(t, isCard)
	})
}

func TestExtractFieldsSampleReceipt(t *testing.T) {
	fields := ExtractFields(testModeSampleText, fixedNow)

	require.NotNil(t, fields.Amount)
	assert.Equal(t, 35000, *fields.Amount)
	assert.Equal(t, "2024-11-28", fields.Date)
	require.NotNil(t, fields.DrinkCount)
	assert.Equal(t, 8, *fields.DrinkCount)
	assert.Equal(t, "モエ", fields.ChampagneType)
	require.NotNil(t, fields.IsCard)
	assert.True(t, *fields.IsCard)
	assert.NotEmpty(t, fields.CustomerName)

	assert.Contains(t, fields.Details, "amount")
	assert.Contains(t, fields.Details, "date")
	assert.Contains(t, fields.Details, "drinks")
	assert.Contains(t, fields.Details, "champagne")
	assert.Contains(t, fields.Details, "payment")
}
