package assistant

import "ai_manager_backend/pkg/utils"

// cannedTopic is one keyword group of the offline responder. Topics are
// checked in order and the first match wins.
type cannedTopic struct {
	keywords []string
	reply    string
}

var cannedTopics = []cannedTopic{
	{
		keywords: []string{"employee", "hr", "staff"},
		reply: `Based on your employee data, I recommend focusing on:

1. **Performance Reviews**: Schedule quarterly reviews to maintain engagement
2. **Skills Development**: Consider training programs for IT and Operations teams
3. **Retention Strategy**: Your active employee rate is good, but consider implementing mentorship programs
4. **Workload Balance**: Monitor project assignments to prevent burnout

Would you like me to help create a specific action plan for any of these areas?`,
	},
	{
		keywords: []string{"inventory", "stock", "supply"},
		reply: `Your inventory analysis suggests these optimizations:

1. **Stock Alerts**: Set up automated reorder points for critical items
2. **Supplier Relations**: Consider backup suppliers for high-value items
3. **Seasonal Planning**: Adjust stock levels based on demand patterns
4. **Cost Optimization**: Review pricing with suppliers quarterly

Current low stock items need immediate attention. Should I help prioritize reorder actions?`,
	},
	{
		keywords: []string{"project", "timeline", "budget"},
		reply: `Project management insights for your current portfolio:

1. **Budget Tracking**: Your projects are within budget range, maintain current monitoring
2. **Resource Allocation**: Consider reallocating team members for better efficiency
3. **Timeline Optimization**: Focus on milestone completion rates
4. **Risk Management**: Identify potential bottlenecks early

Would you like detailed analysis on any specific project?`,
	},
	{
		keywords: []string{"finance", "revenue", "profit"},
		reply: `Financial health analysis shows:

1. **Cash Flow**: Maintain current positive trend with regular monitoring
2. **Cost Control**: Review monthly expenses for optimization opportunities
3. **Revenue Growth**: Consider expanding successful service lines
4. **Investment Planning**: Allocate budget for technology upgrades

Your profit margins are healthy. Shall I suggest specific growth strategies?`,
	},
	{
		keywords: []string{"dashboard", "overview", "metrics"},
		reply: `Your business dashboard indicates strong performance:

1. **Key Metrics**: All major KPIs are trending positively
2. **Department Health**: Operations and IT departments show excellent productivity
3. **System Alerts**: Address low stock items and upcoming project deadlines
4. **Growth Opportunities**: Focus on scaling successful initiatives

What specific metrics would you like me to analyze in detail?`,
	},
	{
		keywords: []string{"analysis", "performance", "improve"},
		reply: `Comprehensive business analysis:

**Strengths:**
• Strong financial performance with healthy profit margins
• Active project pipeline with good completion rates
• Stable employee base with good retention
• Well-managed inventory with minimal waste

**Opportunities:**
• Automate routine tasks to improve efficiency
• Expand into complementary service areas
• Implement data analytics for better decision making
• Develop employee skills through training programs

**Immediate Actions:**
• Address any low stock inventory items
• Review project timelines for optimization
• Plan next quarter's financial targets
• Schedule team performance reviews

What specific area would you like me to analyze in more detail?`,
	},
}

const defaultCannedReply = `I'm here to help optimize your business operations. Based on your current data:

**Immediate Actions:**
• Review inventory levels and reorder critical items
• Update employee performance tracking
• Monitor project timelines for potential delays
• Analyze this month's financial performance

**Strategic Recommendations:**
• Implement automated alerts for low stock
• Create employee development programs
• Optimize project resource allocation
• Plan for next quarter's budget cycle

What specific area would you like me to focus on: Employees, Inventory, Projects, or Finance?`

// CannedReply answers message from the keyword table. It is deterministic:
// the same message always yields the same reply.
func CannedReply(message string) string {
	for _, topic := range cannedTopics {
		if utils.ContainsAny(message, topic.keywords...) {
			return topic.reply
		}
	}
	return defaultCannedReply
}
