package intake

// Option is one selectable button on the form. Value is what gets sent,
// Label is what the button shows.
type Option struct {
	Value string
	Label string
}

// DefaultInjury is preselected on the form
const DefaultInjury = "없음 (최근 컨디션 좋음)"

// OpeningQuestion is sent as the first question once the form is submitted
const OpeningQuestion = "위의 정보를 바탕으로 나만을 위한 구체적인 12주 훈련 계획표를 짜주세요."

var Goals = []Option{
	{Value: string(Goal10K), Label: "10km"},
	{Value: string(GoalHalf), Label: "하프 마라톤"},
	{Value: string(GoalMarathon), Label: "풀 마라톤"},
	{Value: string(GoalTrail), Label: "트레일러닝"},
}

var Levels = []Option{
	{Value: "초보 (60분 이상)", Label: "초보 (60분 이상)"},
	{Value: "중급 (50분대)", Label: "중급 (50분대)"},
	{Value: "고급 (40분대 이하)", Label: "고급 (40분대 이하)"},
}

var Injuries = []Option{
	{Value: DefaultInjury, Label: "없음 (건강함)"},
	{Value: "무릎 (장경인대 등)", Label: "무릎/관절"},
	{Value: "발목/아킬레스건", Label: "발목/종아리"},
	{Value: "족저근막염", Label: "발바닥"},
}

var Days = []Option{
	{Value: "주 2~3회", Label: "주 2~3회"},
	{Value: "주 4회", Label: "주 4회"},
	{Value: "주 5회 이상", Label: "주 5회 이상"},
}

// TimeOptions lists the finish-time choices per road goal. Trail has none.
var TimeOptions = map[Goal][]string{
	Goal10K: {
		"35분", "40분", "45분", "50분", "55분", "1시간 00분", "1시간 05분",
		"1시간 10분", "1시간 15분", "1시간 20분", "1시간 25분", "1시간 30분",
	},
	GoalHalf: {
		"1시간 30분", "1시간 35분", "1시간 40분", "1시간 45분", "1시간 50분", "1시간 55분",
		"2시간 00분", "2시간 05분", "2시간 10분", "2시간 15분", "2시간 20분", "2시간 25분", "2시간 30분",
	},
	GoalMarathon: {
		"2시간 40분", "2시간 50분", "3시간 00분", "3시간 10분", "3시간 20분", "3시간 30분",
		"3시간 40분", "3시간 50분", "4시간 00분", "4시간 15분", "4시간 30분", "4시간 45분",
		"5시간 00분", "5시간 15분", "5시간 30분",
	},
}
